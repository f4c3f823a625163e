// Package sorter 文件清扫模块
// move.go - 跨文件系统可用的文件移动原语
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package sorter

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// moveFile 移动文件
// 优先使用 rename（同一文件系统内零拷贝）；
// 源和目标位于不同文件系统时退回"复制 + 删除源文件"
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}

	// 跨设备：先复制再删除
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// isCrossDevice 判断 rename 是否因跨文件系统而失败
func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)
}

// copyFile 复制文件内容和权限位
// 复制中途失败时删除残留的目标文件
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst) // 清理写了一半的目标文件
		return err
	}

	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}

	return out.Close()
}
