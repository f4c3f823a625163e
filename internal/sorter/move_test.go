// Package sorter 文件清扫模块测试
// move_test.go - 移动原语测试
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package sorter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMoveFile 验证同一文件系统内的移动
func TestMoveFile(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.txt")
	dst := filepath.Join(tmp, "dst.txt")
	writeFile(t, src, "payload")

	require.NoError(t, moveFile(src, dst))

	assert.False(t, exists(src))
	assert.Equal(t, "payload", readFile(t, dst))
}

// TestCopyFile 验证复制原语保留内容和权限位
// moveFile 在跨文件系统时退回到该原语
func TestCopyFile(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.bin")
	dst := filepath.Join(tmp, "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("binary payload"), 0600))

	require.NoError(t, copyFile(src, dst))

	assert.Equal(t, "binary payload", readFile(t, dst))
	assert.True(t, exists(src)) // 复制不删除源文件，删除由 moveFile 负责

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

// TestCopyFileMissingSource 验证源文件不存在时报错且不产生目标文件
func TestCopyFileMissingSource(t *testing.T) {
	tmp := t.TempDir()
	dst := filepath.Join(tmp, "dst.bin")

	err := copyFile(filepath.Join(tmp, "missing.bin"), dst)

	assert.Error(t, err)
	assert.False(t, exists(dst))
}
