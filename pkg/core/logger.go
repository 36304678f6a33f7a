package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志等级
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// SetupLogger 初始化日志系统，返回的 io.Closer 用于退出前关闭日志文件
func SetupLogger(config *Config) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(config.LogFile), 0755); err != nil {
		return nil, nil, fmt.Errorf("创建日志目录失败: %w", err)
	}

	lumberjackLogger := &lumberjack.Logger{
		Filename:   config.LogFile,
		MaxSize:    config.LogMaxSize,
		MaxBackups: config.LogMaxBackups,
		MaxAge:     config.LogMaxAge,
		Compress:   config.LogCompress,
	}

	logger := log.New(lumberjackLogger, "", log.LstdFlags)
	return logger, lumberjackLogger, nil
}

// LogMessage 根据日志等级记录日志
func LogMessage(logger *log.Logger, level int, message string, config *Config) {
	if logger == nil || !shouldLog(level, config) {
		return
	}
	logger.Printf("[%s] %s", levelName(level), message)
}

func levelName(level int) string {
	switch level {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "DEBUG"
}

// shouldLog 判断是否应该记录该等级的日志
func shouldLog(level int, config *Config) bool {
	return level >= config.LogLevel
}
