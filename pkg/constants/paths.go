package constants

const (
	// 清理目标目录名，相对于当前工作目录
	TargetDirName = "logs"

	ConfigFile  = "logs-clean.conf"
	AppDirName  = "logs-clean"
	LogFileName = "clean.log"
)

// ProtectedPaths 内核伪文件系统，其下不可能存在正常的logs工作目录
var ProtectedPaths = []string{
	"/proc/*",
	"/sys/*",
	"/dev/*",
}
