package core

// Config 主配置结构体，只包含日志等周边设置，清理目标固定不可配置
type Config struct {
	LogLevel       int      // 日志级别 0-3
	LogFile        string   // 日志文件路径
	LogMaxSize     int      // 日志文件最大大小(MB)
	LogMaxAge      int      // 日志文件保留天数
	LogMaxBackups  int      // 保留的旧日志个数
	LogCompress    bool     // 是否压缩旧日志
	ProtectedPaths []string // 额外的受保护路径通配符
}

// CleanResult 清理结果统计，只写入日志
type CleanResult struct {
	FilesRemoved int64
	LinksRemoved int64
	DirsRemoved  int64
	Skipped      int64
	Failed       int64
}

// entryKind 目录项类型
type entryKind int

const (
	kindOther entryKind = iota
	kindFile
	kindSymlink
	kindDir
)

func (k entryKind) String() string {
	switch k {
	case kindFile:
		return "文件"
	case kindSymlink:
		return "符号链接"
	case kindDir:
		return "目录"
	}
	return "特殊文件"
}
