package db

import (
	"fmt"
	"os"
	"path/filepath"

	"gestorzap/config"
	"gestorzap/logging"
	"gestorzap/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

// Connect abre conexão com DB (sqlite3 por padrão) e, se configurado, roda o automigrate.
func Connect(conf config.Configuration, log *zap.Logger) (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		log.Info("utilizando conexão com o postgresql", zap.String("host", conf.DbHost), zap.String("db", conf.DbName))
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		log.Info("utilizando conexão com o sqlite3", zap.String("path", conf.DbPath))
		if conf.DbPath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(conf.DbPath), 0o755); err != nil {
				return nil, err
			}
		}
		db, err = gorm.Open("sqlite3", conf.DbPath)
	}

	if err != nil {
		log.Error("erro ao conectar no banco", zap.Error(err))
		return nil, err
	}

	if conf.DbPath == ":memory:" && database != "postgres" && database != "postgresql" {
		// cada conexão do pool teria o seu próprio banco em memória
		db.DB().SetMaxOpenConns(1)
	}

	db.SetLogger(logging.GormLogger{Log: log})
	db.LogMode(log.Core().Enabled(zap.DebugLevel))

	if conf.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate cria/atualiza as tabelas de todos os models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Project{},
		&models.Responsible{},
		&models.WhatsNumber{},
		&models.Group{},
		&models.WarmingNumber{},
		&models.WarmingGroup{},
		&models.SecuritySettings{},
		&models.DeviceEmail{},
	).Error; err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
