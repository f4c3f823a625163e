// Package bucket 分类目录命名模块
// 根据文件名的扩展名决定文件归属的分类目录名
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package bucket

import (
	"path/filepath"
	"strings"
)

// NoExtension 无扩展名文件的分类目录名
const NoExtension = "no_extension"

// ForName 根据文件名推导分类目录名
// 规则:
//   - 取文件名中最后一个点号之后的部分，转为小写
//   - 没有点号、点号在开头（隐藏文件）或点号在结尾时，归入 no_extension
func ForName(name string) string {
	base := filepath.Base(name)

	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return NoExtension // 无点号，或唯一点号在开头（如 .gitignore）
	}

	ext := strings.ToLower(base[idx+1:])
	if ext == "" {
		return NoExtension // 点号在结尾（如 "draft."）
	}

	return ext
}
