package logging

import (
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

// Config 日志配置，File 为空时仅输出到控制台
type Config struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max-size-mb"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAgeDays int    `yaml:"max-age-days"`
}

// Logger 转发到当前配置的 zap logger，Configure 之前获取的包级 logger 也会使用新配置
type Logger struct{}

var current atomic.Pointer[zap.SugaredLogger]

func init() {
	current.Store(build(Config{Level: "info"}))
}

func GetDefaultLogger() *Logger {
	return &Logger{}
}

// Configure 替换进程级 logger
func Configure(conf Config) {
	old := current.Swap(build(conf))
	_ = old.Sync()
}

// ParseLevel 解析日志级别，无法识别时使用 info
func ParseLevel(name string) Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return InfoLevel
	}
	return l
}

func build(conf Config) *zap.SugaredLogger {
	encConf := zap.NewProductionEncoderConfig()
	encConf.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encConf.EncodeLevel = zapcore.CapitalLevelEncoder
	level := zap.NewAtomicLevelAt(ParseLevel(conf.Level))

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encConf), zapcore.Lock(os.Stdout), level),
	}
	if conf.File != "" {
		writer := &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAgeDays,
			LocalTime:  true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encConf), zapcore.AddSync(writer), level))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func (l *Logger) Enabled(level Level) bool {
	return current.Load().Desugar().Core().Enabled(level)
}

func (l *Logger) Debugf(template string, args ...interface{}) {
	current.Load().Debugf(template, args...)
}

func (l *Logger) Infof(template string, args ...interface{}) {
	current.Load().Infof(template, args...)
}

func (l *Logger) Warnf(template string, args ...interface{}) {
	current.Load().Warnf(template, args...)
}

func (l *Logger) Errorf(template string, args ...interface{}) {
	current.Load().Errorf(template, args...)
}

func (l *Logger) Debugw(msg string, keysAndValues ...interface{}) {
	current.Load().Debugw(msg, keysAndValues...)
}

func (l *Logger) Infow(msg string, keysAndValues ...interface{}) {
	current.Load().Infow(msg, keysAndValues...)
}

func (l *Logger) Sync() error {
	return current.Load().Sync()
}
