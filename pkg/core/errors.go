package core

import "errors"

var (
	// ErrProtectedTarget 目标目录位于受保护路径下
	ErrProtectedTarget = errors.New("目标目录位于受保护路径")

	// ErrNotDirectory 目标存在但不是目录
	ErrNotDirectory = errors.New("目标不是目录")
)
