// Package cmd 命令行入口模块
// 提供 sweep 的所有命令行功能，包括文件清扫、统计、配置等
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"sweep/internal/config"
	"sweep/internal/sorter"
	"sweep/internal/ui"
)

// 命令行参数变量
var (
	collision string // 重名处理策略（overwrite/rename/skip）
	verbose   bool   // 详细输出模式
)

// rootCmd 根命令定义
// 用于清扫指定目录中的文件
var rootCmd = &cobra.Command{
	Use:   "sweep <源目录> [目标目录]",
	Short: "sweep - 文件清扫，按扩展名归档",
	Long: ui.Cyan(`
  ███████╗██╗    ██╗███████╗███████╗██████╗
  ██╔════╝██║    ██║██╔════╝██╔════╝██╔══██╗
  ███████╗██║ █╗ ██║█████╗  █████╗  ██████╔╝
  ╚════██║██║███╗██║██╔══╝  ██╔══╝  ██╔═══╝
  ███████║╚███╔███╔╝███████╗███████╗██║
  ╚══════╝ ╚══╝╚══╝ ╚══════╝╚══════╝╚═╝     `) + `

  文件清扫 · 按扩展名归档  v` + config.Version + `

  递归遍历源目录，把每个文件移动到目标目录下
  以其扩展名（小写）命名的子目录中；
  无扩展名的文件归入 no_extension。

示例:
  sweep ~/Downloads             # 清扫到 ./dist
  sweep ~/Downloads ~/archive   # 清扫到指定目录
  sweep ~/Downloads -c skip     # 重名时跳过
  sweep scan ~/Downloads        # 只统计，不移动
  sweep config                  # 查看/修改配置
`,
	Args: cobra.RangeArgs(1, 2), // 源目录必填，目标目录可选
	Run:  runSweep,              // 执行清扫操作
}

// init 初始化命令行参数
func init() {
	// 注册命令行标志
	rootCmd.Flags().StringVarP(&collision, "collision", "c", "", "重名处理策略 (overwrite/rename/skip)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "详细输出")
}

// Execute 执行根命令
// 这是程序的主入口，由 main.go 调用
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runSweep 执行文件清扫的核心逻辑
// 整体流程：校验源目录 -> 创建目标目录 -> 遍历移动 -> 汇总报告
func runSweep(cmd *cobra.Command, args []string) {
	// 显示启动横幅
	ui.Banner()

	cfg := config.Get()

	// 目标目录默认取配置中的目录名，相对当前工作目录解析
	source := args[0]
	dest := cfg.Destination
	if len(args) == 2 {
		dest = args[1]
	}

	// 重名策略：命令行标志优先于配置文件
	policyStr := cfg.Collision
	if collision != "" {
		policyStr = collision
	}
	policy, err := sorter.ParsePolicy(policyStr)
	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}

	// 解析为绝对路径
	source, err = filepath.Abs(source)
	if err != nil {
		ui.Error("无法解析源目录: %v", err)
		os.Exit(1)
	}
	dest, err = filepath.Abs(dest)
	if err != nil {
		ui.Error("无法解析目标目录: %v", err)
		os.Exit(1)
	}

	// ========== 致命检查1: 源目录必须存在且是目录 ==========
	// 在创建目标目录之前检查，失败时不产生任何文件系统改动
	if err := checkSource(source); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}

	// ========== 致命检查2: 创建目标根目录 ==========
	if err := os.MkdirAll(dest, 0755); err != nil {
		ui.Error("无法创建目标目录 %s: %v", dest, err)
		os.Exit(1)
	}

	// 显示清扫概览
	ui.Box("🧹 清扫计划", []string{
		fmt.Sprintf("📂 源目录: %s", source),
		fmt.Sprintf("📥 目标:   %s", dest),
		fmt.Sprintf("⚙️ 重名:   %s", policy),
	})

	// ========== 执行清扫 ==========
	s := sorter.New(dest, policy)

	if verbose {
		// 详细模式：逐文件打印移动记录
		s.OnMove = func(src, dst string) {
			ui.Info("移动: %s", filepath.Base(src))
			ui.Dim("  → %s", dst)
		}
	} else {
		// 默认模式：显示移动进度计数
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("  清扫中"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: "░",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
		)
		s.OnMove = func(src, dst string) {
			bar.Add(1)
		}
	}

	report := s.Run(source)

	// ========== 汇总报告 ==========
	printReport(report)
}

// checkSource 校验源目录
// 路径必须存在且指向一个目录
func checkSource(source string) error {
	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("源目录不存在: %s", source)
	}
	if !info.IsDir() {
		return fmt.Errorf("源路径不是目录: %s", source)
	}
	return nil
}

// printReport 打印清扫汇总报告
// 逐条显示局部失败的路径和原因，最后打印完成提示
func printReport(report *sorter.Report) {
	fmt.Println()
	ui.Success("移动: %d 个文件", report.Moved)
	if report.Skipped > 0 {
		ui.Warning("跳过: %d 个文件（目标位置已存在同名文件）", report.Skipped)
	}
	if len(report.Buckets) > 0 {
		ui.Dim("分类: %d 种", len(report.Buckets))
	}

	// 目录读取失败
	for _, f := range report.ReadFailures {
		ui.Error("无法读取目录 %s: %v", f.Dir, f.Err)
	}

	// 单个文件移动失败
	for _, f := range report.Failures {
		ui.Error("移动失败 %s: %v", f.Path, f.Err)
	}

	if report.HasErrors() {
		ui.Warning("失败: %d 个目录, %d 个文件", len(report.ReadFailures), len(report.Failures))
	}

	// 遍历已完整执行，即便有局部失败也视为正常结束
	fmt.Println()
	ui.Success("清扫完成")
}
