package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gestorzap/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger from the configuration.
// LogDev switches to the console encoder; LogPath adds a file sink next to stderr.
func New(conf config.Configuration) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if conf.LogDev {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(conf.LogLevel)))
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if conf.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(conf.LogPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log dir: %w", err)
		}
		zc.OutputPaths = append(zc.OutputPaths, conf.LogPath)
	}

	return zc.Build()
}

// GormLogger adapts zap to the Print-style logger jinzhu/gorm expects.
type GormLogger struct {
	Log *zap.Logger
}

// Print receives gorm's log values: level ("sql" or "log"), source, then the payload.
func (g GormLogger) Print(v ...interface{}) {
	if g.Log == nil || len(v) == 0 {
		return
	}
	if kind, ok := v[0].(string); ok && kind == "sql" && len(v) >= 6 {
		g.Log.Debug("sql",
			zap.Any("source", v[1]),
			zap.Any("duration", v[2]),
			zap.Any("query", v[3]),
			zap.Any("values", v[4]),
			zap.Any("rows", v[5]),
		)
		return
	}
	g.Log.Debug("gorm", zap.String("msg", fmt.Sprint(v...)))
}
