package config

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	ApiPort  string `json:"api_port" yaml:"api_port"`
	LogPath  string `json:"log_path" yaml:"log_path"`
	LogLevel string `json:"log_level" yaml:"log_level"` // debug|info|warn|error
	LogDev   bool   `json:"log_dev" yaml:"log_dev"`

	Database    string `json:"database" yaml:"database"` // "sqlite3" ou "postgres"
	DbHost      string `json:"db_host" yaml:"db_host"`
	DbPort      string `json:"db_port" yaml:"db_port"`
	DbUser      string `json:"db_user" yaml:"db_user"`
	DbName      string `json:"db_name" yaml:"db_name"`
	DbPass      string `json:"db_pass" yaml:"db_pass"`
	DbPath      string `json:"db_path" yaml:"db_path"` // sqlite3
	AutoMigrate bool   `json:"auto_migrate" yaml:"auto_migrate"`

	Security struct {
		JwtSecret           string `json:"jwt_secret" yaml:"jwt_secret"`
		AccessTTLMinutes    int    `json:"access_ttl_minutes" yaml:"access_ttl_minutes"`
		RefreshCodeLen      int    `json:"refresh_code_len" yaml:"refresh_code_len"`
		RefreshCodeMaxValid int    `json:"refresh_code_max_valid_days" yaml:"refresh_code_max_valid_days"`
	} `json:"security" yaml:"security"`

	Janitor struct {
		IntervalMinutes int `json:"interval_minutes" yaml:"interval_minutes"`
	} `json:"janitor" yaml:"janitor"`
}

// ErrInsecureSecret é devolvido quando o jwt_secret não foi configurado
// (ou ainda é o valor de exemplo) num banco persistente.
var ErrInsecureSecret = errors.New("config: jwt_secret não configurado (defina JWT_SECRET)")

const placeholderSecret = "CHANGE_ME"

// Load reads path (JSON, or YAML for .yaml/.yml), then applies .env and
// environment overrides and finally the defaults. An empty path skips the
// file and builds the configuration from the environment only.
func Load(path string) (Configuration, error) {
	var c Configuration

	// .env é opcional: em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config: %w", err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(b, &c)
		default:
			err = json.Unmarshal(b, &c)
		}
		if err != nil {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	}

	c.applyEnvOverrides()
	c.applyDefaults()
	if err := c.checkSecret(); err != nil {
		return c, err
	}
	return c, nil
}

// InMemory diz se o banco é um sqlite em memória (testes, import descartável).
func (c Configuration) InMemory() bool {
	return c.Database == "sqlite3" && c.DbPath == ":memory:"
}

// checkSecret recusa subir com um segredo conhecido. Em banco em memória
// um segredo aleatório é gerado, já que nenhum token sobrevive ao processo.
func (c *Configuration) checkSecret() error {
	secret := strings.TrimSpace(c.Security.JwtSecret)
	if secret != "" && secret != placeholderSecret {
		return nil
	}
	if !c.InMemory() {
		return ErrInsecureSecret
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Security.JwtSecret = hex.EncodeToString(b)
	return nil
}

func (c *Configuration) applyEnvOverrides() {
	if v := getenv("PORT"); v != "" {
		c.ApiPort = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("LOG_PATH"); v != "" {
		c.LogPath = v
	}
	if v := getenv("DATABASE"); v != "" {
		c.Database = v
	}
	if v := getenv("DB_HOST"); v != "" {
		c.DbHost = v
	}
	if v := getenv("DB_PORT"); v != "" {
		c.DbPort = v
	}
	if v := getenv("DB_USER"); v != "" {
		c.DbUser = v
	}
	if v := getenv("DB_NAME"); v != "" {
		c.DbName = v
	}
	if v := getenv("DB_PASS"); v != "" {
		c.DbPass = v
	}
	if v := getenv("DB_PATH"); v != "" {
		c.DbPath = v
	}
	if getenv("AUTOMIGRATE") == "1" {
		c.AutoMigrate = true
	}
	if v := getenv("JWT_SECRET"); v != "" {
		c.Security.JwtSecret = v
	}
}

func (c *Configuration) applyDefaults() {
	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "db/database.db"
	}
	if c.Security.AccessTTLMinutes <= 0 {
		c.Security.AccessTTLMinutes = 24 * 60
	}
	if c.Security.RefreshCodeLen <= 0 {
		c.Security.RefreshCodeLen = 32
	}
	if c.Security.RefreshCodeMaxValid <= 0 {
		c.Security.RefreshCodeMaxValid = 30
	}
	if c.Janitor.IntervalMinutes <= 0 {
		c.Janitor.IntervalMinutes = 60
	}
}

func getenv(k string) string {
	return strings.TrimSpace(os.Getenv(k))
}
