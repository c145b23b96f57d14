// Package logging builds the application logger: JSON lines into a rotating
// file, plus a colored console stream in debug mode.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lakshaymaurya-felt/pccleaner/internal/config"
)

// FileName is the name of the active log file inside the log directory.
const FileName = "pcc.log"

// New creates a logger writing to settings.LogDir. The caller syncs the
// logger and then closes the returned log file before exit.
func New(s config.Settings) (*zap.Logger, io.Closer, error) {
	if err := os.MkdirAll(s.LogDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(s.LogDir, FileName),
		MaxSize:    s.LogMaxSizeMB,
		MaxBackups: s.LogMaxBackups,
		MaxAge:     s.LogMaxAgeDays,
		Compress:   true,
	}

	fileEnc := zap.NewProductionEncoderConfig()
	fileEnc.EncodeTime = zapcore.ISO8601TimeEncoder

	fileLevel := zapcore.InfoLevel
	if s.Debug {
		fileLevel = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEnc), zapcore.AddSync(rotator), fileLevel),
	}

	if s.Debug {
		consoleEnc := zap.NewDevelopmentEncoderConfig()
		consoleEnc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEnc),
			zapcore.Lock(os.Stderr),
			zapcore.DebugLevel,
		))
	}

	return zap.New(zapcore.NewTee(cores...)), rotator, nil
}
