// Package sorter 文件清扫模块
// 负责把遍历到的文件移动到目标目录下对应的分类子目录，
// 并汇总每次运行的移动、跳过和失败结果
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package sorter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sweep/internal/bucket"
	"sweep/internal/walker"
)

// ==================== 策略定义 ====================

// Policy 重名处理策略
// 目标位置已存在同名文件时的处理方式
type Policy string

const (
	PolicyOverwrite Policy = "overwrite" // 直接覆盖已有文件
	PolicyRename    Policy = "rename"    // 自动添加数字后缀
	PolicySkip      Policy = "skip"      // 跳过，源文件留在原地
)

// ParsePolicy 解析策略字符串
// 大小写不敏感；无法识别时返回错误
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(s)) {
	case PolicyOverwrite:
		return PolicyOverwrite, nil
	case PolicyRename:
		return PolicyRename, nil
	case PolicySkip:
		return PolicySkip, nil
	}
	return "", fmt.Errorf("未知的重名策略: %q（可选 overwrite/rename/skip）", s)
}

// ==================== 类型定义 ====================

// Failure 单个文件的移动失败记录
type Failure struct {
	Path string // 移动失败的文件路径
	Err  error  // 失败原因
}

// Report 一次清扫的汇总结果
// 由调用方统一展示，引擎自身不打印诊断
type Report struct {
	Moved        int                  // 成功移动的文件数
	Skipped      int                  // 因重名策略跳过的文件数
	Failures     []Failure            // 移动失败的文件记录
	ReadFailures []walker.ReadFailure // 目录读取失败记录
	Buckets      map[string]int       // 分类目录 -> 移入的文件数
}

// HasErrors 判断本次运行是否出现过局部失败
func (r *Report) HasErrors() bool {
	return len(r.Failures) > 0 || len(r.ReadFailures) > 0
}

// Sorter 文件清扫器
// dest 为目标根目录，policy 为重名处理策略
type Sorter struct {
	dest   string
	policy Policy

	// OnMove 移动成功回调，用于进度条或详细输出；可为 nil
	OnMove func(src, dst string)
}

// ==================== 构造函数 ====================

// New 创建清扫器
// dest 应为已存在的目标根目录的绝对路径
func New(dest string, policy Policy) *Sorter {
	return &Sorter{dest: dest, policy: policy}
}

// ==================== 核心执行函数 ====================

// Run 清扫源目录
// 前序遍历 source，每遇到一个普通文件就移动到对应分类目录。
// 目标根目录本身被排除在遍历之外。
// 所有局部失败都记入 Report，不中断遍历。
func (s *Sorter) Run(source string) *Report {
	report := &Report{
		Buckets: make(map[string]int),
	}

	w := walker.New(s.dest)
	report.ReadFailures = w.Walk(source, func(e walker.Entry) {
		if e.IsDir {
			return
		}
		s.moveOne(e, report)
	})

	return report
}

// moveOne 移动单个文件到其分类目录
// 任何一步失败都只记录该文件，不影响后续文件
func (s *Sorter) moveOne(e walker.Entry, report *Report) {
	b := bucket.ForName(e.Name)

	// 按需创建分类目录（幂等，已存在不报错）
	targetDir := filepath.Join(s.dest, b)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		report.Failures = append(report.Failures, Failure{Path: e.Path, Err: err})
		return
	}

	target := filepath.Join(targetDir, e.Name)

	// 处理目标位置的重名文件
	if _, err := os.Lstat(target); err == nil {
		switch s.policy {
		case PolicySkip:
			report.Skipped++ // 跳过，源文件留在原地
			return
		case PolicyRename:
			target = nextFreeName(target) // 自动加数字后缀
		case PolicyOverwrite:
			// 直接覆盖
		}
	}

	// 执行移动
	if err := moveFile(e.Path, target); err != nil {
		report.Failures = append(report.Failures, Failure{Path: e.Path, Err: err})
		return
	}

	report.Moved++
	report.Buckets[b]++
	if s.OnMove != nil {
		s.OnMove(e.Path, target)
	}
}

// ==================== 重名处理 ====================

// nextFreeName 处理重名文件
// 如果目标路径已存在文件，自动添加数字后缀
// 例如: file.txt -> file_1.txt -> file_2.txt
func nextFreeName(path string) string {
	// 分解路径
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	name := strings.TrimSuffix(filepath.Base(path), ext)

	// 尝试添加数字后缀
	for i := 1; ; i++ {
		newPath := filepath.Join(dir, fmt.Sprintf("%s_%d%s", name, i, ext))
		if _, err := os.Lstat(newPath); os.IsNotExist(err) {
			return newPath
		}
	}
}
