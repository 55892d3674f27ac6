package logs

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
}

var (
	lock         sync.RWMutex
	log          *zap.Logger
	closeOutputs = func() {}
	logLevel     = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	// stdout carries the escaped output, logs go to stderr
	ws, _, err := zap.Open("stderr")
	if err != nil {
		panic(err)
	}
	log = newLogger(ws)
}

func newLogger(ws zapcore.WriteSyncer) *zap.Logger {
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ws, logLevel))
}

func GetLogger() *zap.Logger {
	lock.RLock()
	defer lock.RUnlock()
	return log
}

func SetLevel(level zapcore.Level) {
	logLevel.SetLevel(level)
}

// ReplaceLogger swaps the process-wide logger for one writing to config.OutputPaths at config.Level.
// On error the current logger and level are left untouched.
func ReplaceLogger(config *LogConfig) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		return errors.Wrapf(err, "failed to parse log level '%s'", config.Level)
	}

	ws, closeWs, err := zap.Open(config.OutputPaths...)
	if err != nil {
		return errors.Wrapf(err, "failed to open log outputs %v", config.OutputPaths)
	}

	lock.Lock()
	previous, closePrevious := log, closeOutputs
	log, closeOutputs = newLogger(ws), closeWs
	logLevel.SetLevel(level)
	lock.Unlock()

	_ = previous.Sync()
	closePrevious()
	return nil
}

type LogConfig struct {
	Level       string   `yaml:"level" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	OutputPaths []string `yaml:"outputPaths" validate:"min=1,dive,required"`
}

func (c LogConfig) Default() *LogConfig {
	return &LogConfig{
		Level: "info",
		OutputPaths: []string{
			"stderr",
		},
	}
}
