package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogCleaner 清空工作目录下logs目录的清理器
type LogCleaner struct {
	config  *Config
	logger  *log.Logger
	out     io.Writer
	remover remover
}

// NewLogCleaner 创建清理器，out 接收目标路径和每个删除失败的提示
func NewLogCleaner(config *Config, logger *log.Logger, out io.Writer) *LogCleaner {
	return &LogCleaner{
		config:  config,
		logger:  logger,
		out:     out,
		remover: osRemover{},
	}
}

// Clean 删除 workDir/logs 下的全部目录项，保留logs目录本身。
// 单个目录项删除失败只输出提示，不影响其余目录项。
func (c *LogCleaner) Clean(workDir string) {
	target := TargetDir(workDir)
	fmt.Fprintln(c.out, target)
	LogMessage(c.logger, LevelInfo, fmt.Sprintf("开始清理: %s", target), c.config)

	if isProtected(target, c.config.ProtectedPaths) {
		c.failTarget(target, ErrProtectedTarget)
		return
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			LogMessage(c.logger, LevelInfo, fmt.Sprintf("目录不存在，无需清理: %s", target), c.config)
			return
		}
		c.failTarget(target, err)
		return
	}
	if !info.IsDir() {
		c.failTarget(target, ErrNotDirectory)
		return
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		c.failTarget(target, fmt.Errorf("读取目录失败: %w", err))
		return
	}

	var result CleanResult
	for _, entry := range entries {
		c.removeEntry(filepath.Join(target, entry.Name()), &result)
	}

	LogMessage(c.logger, LevelInfo, fmt.Sprintf(
		"清理完成: 删除文件%d个, 删除链接%d个, 删除文件夹%d个, 跳过%d个, 失败%d个",
		result.FilesRemoved,
		result.LinksRemoved,
		result.DirsRemoved,
		result.Skipped,
		result.Failed,
	), c.config)
}

// removeEntry 删除单个目录项，错误在此处消化
func (c *LogCleaner) removeEntry(path string, result *CleanResult) {
	kind, err := classifyEntry(path)
	if err != nil {
		result.Failed++
		c.fail(path, err, LevelWarn)
		return
	}

	switch kind {
	case kindFile, kindSymlink:
		err = c.remover.Remove(path)
	case kindDir:
		err = c.remover.RemoveAll(path)
	default:
		result.Skipped++
		LogMessage(c.logger, LevelDebug, fmt.Sprintf("跳过%s: %s", kind, path), c.config)
		return
	}
	if err != nil {
		result.Failed++
		c.fail(path, err, LevelWarn)
		return
	}

	switch kind {
	case kindFile:
		result.FilesRemoved++
	case kindSymlink:
		result.LinksRemoved++
	case kindDir:
		result.DirsRemoved++
	}
	LogMessage(c.logger, LevelDebug, fmt.Sprintf("删除%s: %s", kind, path), c.config)
}

// fail 输出一行目录项删除失败提示并写入日志
func (c *LogCleaner) fail(path string, err error, level int) {
	c.report(fmt.Sprintf("删除失败 %s: %v", path, err), level)
}

// failTarget 目标目录本身无法清理，没有尝试删除任何目录项
func (c *LogCleaner) failTarget(target string, err error) {
	c.report(fmt.Sprintf("清理失败 %s: %v", target, err), LevelError)
}

func (c *LogCleaner) report(message string, level int) {
	fmt.Fprintln(c.out, message)
	LogMessage(c.logger, level, message, c.config)
}
