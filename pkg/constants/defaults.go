package constants

// 日志默认参数
const (
	DefaultLogLevel      = 1
	DefaultLogMaxSize    = 10 // MB
	DefaultLogMaxAge     = 7  // 天
	DefaultLogMaxBackups = 3
)
