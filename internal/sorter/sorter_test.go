// Package sorter 文件清扫模块测试
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

// writeFile 创建测试文件（含必要的父目录）
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// readFile 读取文件内容
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// exists 判断路径是否存在
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// newDest 在临时目录旁创建目标根目录
func newDest(t *testing.T) string {
	t.Helper()
	dest := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(dest, 0755))
	return dest
}

// TestExtensionBucketing 验证文件被移动到扩展名对应的分类目录
func TestExtensionBucketing(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)
	writeFile(t, filepath.Join(src, "photo.jpg"), "jpg data")
	writeFile(t, filepath.Join(src, "notes.md"), "md data")

	report := New(dest, PolicyRename).Run(src)

	assert.Equal(t, 2, report.Moved)
	assert.False(t, report.HasErrors())
	assert.Equal(t, "jpg data", readFile(t, filepath.Join(dest, "jpg", "photo.jpg")))
	assert.Equal(t, "md data", readFile(t, filepath.Join(dest, "md", "notes.md")))
	assert.False(t, exists(filepath.Join(src, "photo.jpg"))) // 源位置不再保留
	assert.False(t, exists(filepath.Join(src, "notes.md")))
}

// TestNoExtensionBucketing 验证无扩展名文件归入 no_extension
func TestNoExtensionBucketing(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)
	writeFile(t, filepath.Join(src, "README"), "readme")

	report := New(dest, PolicyRename).Run(src)

	assert.Equal(t, 1, report.Moved)
	assert.Equal(t, "readme", readFile(t, filepath.Join(dest, "no_extension", "README")))
}

// TestCaseNormalization 验证扩展名大小写归并到同一分类目录
func TestCaseNormalization(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)
	writeFile(t, filepath.Join(src, "a.TXT"), "upper")
	writeFile(t, filepath.Join(src, "b.txt"), "lower")

	report := New(dest, PolicyRename).Run(src)

	assert.Equal(t, 2, report.Moved)
	assert.True(t, exists(filepath.Join(dest, "txt", "a.TXT"))) // 文件名保留原大小写
	assert.True(t, exists(filepath.Join(dest, "txt", "b.txt")))
	assert.Equal(t, 2, report.Buckets["txt"])
}

// TestFlattening 验证原目录层级被摊平，只按扩展名归档
func TestFlattening(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)
	writeFile(t, filepath.Join(src, "sub1", "sub2", "c.md"), "deep")

	report := New(dest, PolicyRename).Run(src)

	assert.Equal(t, 1, report.Moved)
	assert.Equal(t, "deep", readFile(t, filepath.Join(dest, "md", "c.md")))
	assert.False(t, exists(filepath.Join(dest, "md", "sub1"))) // 不保留子目录结构
}

// TestDestinationInsideSource 验证目标目录位于源目录内时不会自我递归
// 已归档的文件不被再次遍历，运行正常终止
func TestDestinationInsideSource(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(src, "dist")

	// 目标目录里预先放一个已归档的文件
	writeFile(t, filepath.Join(dest, "txt", "already.txt"), "archived")
	writeFile(t, filepath.Join(src, "a.txt"), "new")

	report := New(dest, PolicyRename).Run(src)

	assert.Equal(t, 1, report.Moved)
	// 已归档文件原地不动，没有被再次移动或重命名
	assert.Equal(t, "archived", readFile(t, filepath.Join(dest, "txt", "already.txt")))
	assert.False(t, exists(filepath.Join(dest, "txt", "already_1.txt")))
	assert.Equal(t, "new", readFile(t, filepath.Join(dest, "txt", "a.txt")))
}

// TestIdempotentBucketCreation 验证分类目录已存在时第二次运行不报错
func TestIdempotentBucketCreation(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)
	writeFile(t, filepath.Join(src, "a.txt"), "x")

	first := New(dest, PolicyRename).Run(src)
	require.Equal(t, 1, first.Moved)

	// 第二次运行源目录已空，分类目录均已存在
	second := New(dest, PolicyRename).Run(src)

	assert.Equal(t, 0, second.Moved)
	assert.False(t, second.HasErrors())
}

// TestPartialFailureIsolation 验证单个文件移动失败不影响其余文件
// 预先把 dest/txt 占位成普通文件，使 txt 分类目录无法创建
func TestPartialFailureIsolation(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)
	writeFile(t, filepath.Join(dest, "txt"), "occupied") // 占位，MkdirAll 必然失败
	writeFile(t, filepath.Join(src, "bad.txt"), "cannot move")
	writeFile(t, filepath.Join(src, "good.md"), "fine")
	writeFile(t, filepath.Join(src, "sub", "also.pdf"), "fine too")

	report := New(dest, PolicyRename).Run(src)

	// 失败的文件被记录且留在原地
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0].Path, "bad.txt")
	assert.Equal(t, "cannot move", readFile(t, filepath.Join(src, "bad.txt")))

	// 其余文件照常移动
	assert.Equal(t, 2, report.Moved)
	assert.True(t, exists(filepath.Join(dest, "md", "good.md")))
	assert.True(t, exists(filepath.Join(dest, "pdf", "also.pdf")))
}

// TestEmptySource 验证空源目录不产生任何分类目录
func TestEmptySource(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)

	report := New(dest, PolicyRename).Run(src)

	assert.Equal(t, 0, report.Moved)
	assert.False(t, report.HasErrors())

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries) // 目标目录保持为空
}

// TestNonDirectorySource 验证对普通文件执行清扫只记录读取失败
func TestNonDirectorySource(t *testing.T) {
	tmp := t.TempDir()
	dest := newDest(t)
	file := filepath.Join(tmp, "plain.txt")
	writeFile(t, file, "not a dir")

	report := New(dest, PolicyRename).Run(file)

	assert.Equal(t, 0, report.Moved)
	require.Len(t, report.ReadFailures, 1)
	assert.Equal(t, file, report.ReadFailures[0].Dir)
	assert.Equal(t, "not a dir", readFile(t, file)) // 文件原封不动
}

// ==================== 重名策略测试 ====================

// TestCollisionRename 验证 rename 策略自动添加数字后缀
func TestCollisionRename(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)
	writeFile(t, filepath.Join(dest, "txt", "a.txt"), "old")
	writeFile(t, filepath.Join(src, "a.txt"), "new")

	report := New(dest, PolicyRename).Run(src)

	assert.Equal(t, 1, report.Moved)
	assert.Equal(t, "old", readFile(t, filepath.Join(dest, "txt", "a.txt")))
	assert.Equal(t, "new", readFile(t, filepath.Join(dest, "txt", "a_1.txt")))
}

// TestCollisionOverwrite 验证 overwrite 策略覆盖已有文件
func TestCollisionOverwrite(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)
	writeFile(t, filepath.Join(dest, "txt", "a.txt"), "old")
	writeFile(t, filepath.Join(src, "a.txt"), "new")

	report := New(dest, PolicyOverwrite).Run(src)

	assert.Equal(t, 1, report.Moved)
	assert.Equal(t, "new", readFile(t, filepath.Join(dest, "txt", "a.txt")))
	assert.False(t, exists(filepath.Join(dest, "txt", "a_1.txt")))
}

// TestCollisionSkip 验证 skip 策略保留双方文件
func TestCollisionSkip(t *testing.T) {
	src := t.TempDir()
	dest := newDest(t)
	writeFile(t, filepath.Join(dest, "txt", "a.txt"), "old")
	writeFile(t, filepath.Join(src, "a.txt"), "new")

	report := New(dest, PolicySkip).Run(src)

	assert.Equal(t, 0, report.Moved)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "old", readFile(t, filepath.Join(dest, "txt", "a.txt")))
	assert.Equal(t, "new", readFile(t, filepath.Join(src, "a.txt"))) // 源文件原地保留
}

// TestParsePolicy 验证策略字符串解析
func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("OVERWRITE")
	require.NoError(t, err)
	assert.Equal(t, PolicyOverwrite, p)

	_, err = ParsePolicy("bogus")
	assert.Error(t, err)
}
