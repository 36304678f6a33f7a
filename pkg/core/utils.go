package core

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/IGLOU-EU/go-wildcard"
	"logs-clean/pkg/constants"
)

// remover 文件系统删除操作，测试中可替换
type remover interface {
	Remove(path string) error
	RemoveAll(path string) error
}

type osRemover struct{}

func (osRemover) Remove(path string) error    { return os.Remove(path) }
func (osRemover) RemoveAll(path string) error { return os.RemoveAll(path) }

// TargetDir 返回工作目录下的logs目录路径
func TargetDir(workDir string) string {
	return filepath.Join(workDir, constants.TargetDirName)
}

// classifyEntry 用Lstat判断目录项类型，不跟随符号链接
func classifyEntry(path string) (entryKind, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return kindOther, err
	}

	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return kindSymlink, nil
	case mode.IsRegular():
		return kindFile, nil
	case mode.IsDir():
		return kindDir, nil
	}
	return kindOther, nil
}

// isProtected 检查路径是否匹配内置或配置的受保护路径
func isProtected(path string, extra []string) bool {
	for _, pattern := range constants.ProtectedPaths {
		if wildcard.Match(pattern, path) {
			return true
		}
	}
	for _, pattern := range extra {
		if wildcard.Match(pattern, path) {
			return true
		}
	}
	return false
}
