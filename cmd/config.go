// Package cmd 命令行入口模块
// config.go - 配置管理命令，用于查看和修改 sweep 配置
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sweep/internal/config"
	"sweep/internal/sorter"
	"sweep/internal/ui"
)

// 配置选项标志
var (
	setDestination string // 设置默认目标目录名
	setCollision   string // 设置默认重名策略
	resetConfig    bool   // 恢复出厂默认值
)

// configCmd 配置管理命令定义
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "配置管理",
	Long:  "查看或修改 sweep 配置",
	Run:   runConfig,
}

// init 注册 config 子命令及其标志
func init() {
	configCmd.Flags().StringVar(&setDestination, "destination", "", "设置默认目标目录名")
	configCmd.Flags().StringVar(&setCollision, "collision", "", "设置默认重名策略 (overwrite/rename/skip)")
	configCmd.Flags().BoolVar(&resetConfig, "reset", false, "恢复出厂默认值")
	rootCmd.AddCommand(configCmd)
}

// runConfig 执行配置命令
// 如果没有设置选项，显示当前配置；否则修改配置
func runConfig(cmd *cobra.Command, args []string) {
	ui.Banner()
	cfg := config.Get()

	// 恢复出厂默认值（危险操作需确认）
	if resetConfig {
		if !ui.ConfirmDanger("确认恢复出厂默认配置?") {
			ui.Warning("已取消")
			return
		}
		cfg.Reset()
		if err := cfg.Save(); err != nil {
			ui.Error("保存配置失败: %v", err)
			return
		}
		ui.Success("已恢复出厂默认配置")
		return
	}

	// 检查是否有设置选项
	hasChanges := false

	// 设置默认目标目录名
	if setDestination != "" {
		if strings.ContainsAny(setDestination, `/\`) {
			ui.Error("目标目录名不能包含路径分隔符")
			return
		}
		cfg.Destination = setDestination
		ui.Success("默认目标目录已设置为: %s", setDestination)
		hasChanges = true
	}

	// 设置默认重名策略
	if setCollision != "" {
		policy, err := sorter.ParsePolicy(setCollision)
		if err != nil {
			ui.Error("%v", err)
			return
		}
		cfg.Collision = string(policy)
		ui.Success("默认重名策略已设置为: %s", policy)
		hasChanges = true
	}

	// 如果有更改，保存配置
	if hasChanges {
		if err := cfg.Save(); err != nil {
			ui.Error("保存配置失败: %v", err)
		} else {
			ui.Success("配置已保存")
		}
		return
	}

	// 没有设置选项，显示当前配置
	showConfig(cfg)
}

// showConfig 显示当前配置
func showConfig(cfg *config.Config) {
	ui.Title("⚙️", "当前配置")
	ui.Divider()

	fmt.Println()
	ui.Info("清扫配置:")
	ui.Info("  默认目标目录:  %s", cfg.Destination)
	ui.Info("  默认重名策略:  %s", cfg.Collision)

	fmt.Println()
	ui.Info("数据路径:")
	ui.Info("  数据目录:      %s", cfg.DataDir)

	fmt.Println()
	ui.Dim("修改配置示例:")
	ui.Dim("  sweep config --destination archive")
	ui.Dim("  sweep config --collision skip")
	ui.Dim("  sweep config --reset")
}
