// Package logger construye el logger zap de la aplicación.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New crea un logger con el nivel (debug, info, warn, error) y formato
// (json, console) indicados. Con outputFile vacío escribe en stderr.
func New(level, format, outputFile string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("nivel de log inválido: %s", level)
	}

	if format == "" {
		format = "json"
	}

	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
	case "json":
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("formato de log inválido: %s", format)
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	if outputFile != "" {
		if dir := filepath.Dir(outputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("no se pudo crear el directorio de logs %s: %w", dir, err)
			}
		}
		config.OutputPaths = []string{outputFile}
		config.ErrorOutputPaths = []string{outputFile}
	}

	return config.Build()
}
