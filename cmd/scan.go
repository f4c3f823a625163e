// Package cmd 命令行入口模块
// scan.go - 扫描命令，统计目录中文件按分类目录的分布情况
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package cmd

import (
	"github.com/spf13/cobra"

	"sweep/internal/ui"
	"sweep/internal/walker"
)

// scanCmd 扫描命令定义
var scanCmd = &cobra.Command{
	Use:   "scan <目录>",
	Short: "扫描统计",
	Long:  "扫描目录并显示文件将被归入哪些分类目录，不移动任何文件",
	Args:  cobra.ExactArgs(1), // 必须提供一个目录参数
	Run:   runScan,
}

// init 注册 scan 子命令
func init() {
	rootCmd.AddCommand(scanCmd)
}

// runScan 执行扫描命令
// 只读遍历指定目录，统计各分类目录的文件数量和大小
func runScan(cmd *cobra.Command, args []string) {
	ui.Banner()

	dir := args[0]

	// 源目录校验与清扫命令一致
	if err := checkSource(dir); err != nil {
		ui.Error("%v", err)
		return
	}

	// 遍历并统计
	stats, failures := walker.Collect(dir)

	// 打印统计信息
	walker.PrintStatistics(stats)

	// 显示遍历中遇到的读取失败
	for _, f := range failures {
		ui.Error("无法读取目录 %s: %v", f.Dir, f.Err)
	}
}
