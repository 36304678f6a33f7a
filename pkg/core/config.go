package core

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"logs-clean/pkg/constants"
)

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      constants.DefaultLogLevel,
		LogFile:       DefaultLogFile(),
		LogMaxSize:    constants.DefaultLogMaxSize,
		LogMaxAge:     constants.DefaultLogMaxAge,
		LogMaxBackups: constants.DefaultLogMaxBackups,
		LogCompress:   true,
	}
}

// DefaultLogFile 默认日志文件放在用户缓存目录，不能放进被清理的logs目录
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, constants.AppDirName, constants.LogFileName)
}

// ParseConfig 解析配置文件，文件不存在时使用默认配置
func ParseConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("打开配置文件失败: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// 跳过注释和空行
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "log_level":
			config.LogLevel, err = strconv.Atoi(value)
		case "log_file":
			config.LogFile = value
		case "log_max_size":
			config.LogMaxSize, err = strconv.Atoi(value)
		case "log_max_age":
			config.LogMaxAge, err = strconv.Atoi(value)
		case "log_max_backups":
			config.LogMaxBackups, err = strconv.Atoi(value)
		case "log_compress":
			config.LogCompress = strings.ToLower(value) == "true"
		case "protected_paths":
			config.ProtectedPaths = splitList(value)
		}
		if err != nil {
			return nil, fmt.Errorf("配置文件第%d行 %s 无效: %w", lineNo, key, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config.normalize()
	return config, nil
}

// normalize 修正越界的值
func (c *Config) normalize() {
	if c.LogLevel < 0 || c.LogLevel > 3 {
		c.LogLevel = constants.DefaultLogLevel
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile()
	}
	if c.LogMaxSize <= 0 {
		c.LogMaxSize = constants.DefaultLogMaxSize
	}
	if c.LogMaxAge < 0 {
		c.LogMaxAge = constants.DefaultLogMaxAge
	}
	if c.LogMaxBackups < 0 {
		c.LogMaxBackups = constants.DefaultLogMaxBackups
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
