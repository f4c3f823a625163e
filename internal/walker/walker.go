// Package walker 目录遍历模块
// 提供基于显式工作队列的前序目录遍历
// 支持排除目标目录，避免清扫过程自我递归
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package walker

import (
	"os"
	"path/filepath"
)

// ==================== 类型定义 ====================

// Entry 遍历到的文件系统条目
// 存储条目的基本信息
type Entry struct {
	Path  string // 条目完整路径
	Name  string // 条目名
	Size  int64  // 文件大小（字节），目录为 0
	IsDir bool   // 是否为目录
}

// ReadFailure 目录读取失败记录
// 记录无法枚举子项的目录及原因
type ReadFailure struct {
	Dir string // 读取失败的目录路径
	Err error  // 失败原因
}

// WalkFunc 遍历回调函数
// 对每个目录和普通文件各调用一次；其他类型条目不回调
type WalkFunc func(Entry)

// Walker 目录遍历器
// exclude 为需要整体跳过的目录（通常是目标目录），为空表示不排除
type Walker struct {
	exclude string // 排除目录的原始路径
}

// ==================== 构造函数 ====================

// New 创建遍历器
// excludeDir 传入目标目录路径；传空字符串表示不排除任何目录
func New(excludeDir string) *Walker {
	return &Walker{exclude: excludeDir}
}

// ==================== 核心遍历函数 ====================

// Walk 前序遍历目录树
// 使用显式工作队列代替递归调用，深树不受调用栈深度限制。
// 每个目录读取失败只放弃该目录的子树，已入队的其他目录继续处理。
// 返回所有目录读取失败记录。
func (w *Walker) Walk(root string, fn WalkFunc) []ReadFailure {
	var failures []ReadFailure

	// 待处理目录的工作栈（后进先出 = 深度优先）
	pending := []string{root}

	for len(pending) > 0 {
		// 弹出栈顶目录
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		// 枚举目录子项
		entries, err := os.ReadDir(dir)
		if err != nil {
			// 读取失败：记录后放弃该子树，继续处理其余目录
			failures = append(failures, ReadFailure{Dir: dir, Err: err})
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			// 按元数据分类条目；符号链接按其指向的类型处理
			info, err := os.Stat(path)
			if err != nil {
				continue // 悬空链接等无法分类的条目，静默忽略
			}

			switch {
			case info.IsDir():
				// 目标目录本身不入队，避免清扫已归档的文件
				if w.isExcluded(path) {
					continue
				}
				if fn != nil {
					fn(Entry{Path: path, Name: entry.Name(), IsDir: true})
				}
				pending = append(pending, path)

			case info.Mode().IsRegular():
				if fn != nil {
					fn(Entry{Path: path, Name: entry.Name(), Size: info.Size()})
				}

			default:
				// 设备文件、套接字等既非目录也非普通文件，忽略
			}
		}
	}

	return failures
}

// isExcluded 判断目录是否为排除目录
// 双方都做规范化（绝对路径 + 解析符号链接）后比较，
// 每次访问时实时解析，不跨次缓存
func (w *Walker) isExcluded(dir string) bool {
	if w.exclude == "" {
		return false
	}
	return canonical(dir) == canonical(w.exclude)
}

// canonical 计算路径的规范绝对形式
// 解析相对段和符号链接；无法解析时退回绝对路径
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}
