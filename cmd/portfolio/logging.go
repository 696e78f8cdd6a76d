package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/samnmy/portfolio/constants"
)

const (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName
	maxLogSize  = constants.MaxLogSize
)

// setupLogging returns a JSON file logger when debug is set, otherwise a no-op logger
// The terminal belongs to the page, so nothing is ever written to stdout or stderr
// A log file over maxLogSize is rotated aside with a timestamp
func setupLogging(debug bool) (*zap.Logger, *os.File) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zap.NewNop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(logFileName)
		rotated := fmt.Sprintf("%s-%s%s", logFileName[:len(logFileName)-len(ext)], time.Now().Format("20060102-150405"), ext)
		_ = os.Rename(logPath, filepath.Join(logDir, rotated))
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zap.NewNop(), nil
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(f), zap.DebugLevel)
	return zap.New(core), f
}
