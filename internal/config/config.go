// Package config 配置管理模块
// 提供全局配置的加载、保存和管理功能
// 配置文件存储在 ~/.sweep/config.json
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// 版本和作者信息常量
const (
	Version   = "1.0.0"                             // 程序版本号
	BuildDate = "2026"                              // 构建日期
	Author    = "lynx-lee"                          // 作者
	Homepage  = "https://github.com/lynx-lee/sweep" // 项目主页
	License   = "MIT"                               // 开源许可
)

// 出厂默认值常量
const (
	DefaultDestination = "dist"   // 默认目标目录名（相对当前工作目录）
	DefaultCollision   = "rename" // 默认重名处理策略
)

// Config 全局配置结构体
// 包含目标目录和重名处理策略的默认值
type Config struct {
	// ==================== 清扫配置 ====================
	Destination string `json:"destination"` // 默认目标目录（未指定第二个参数时使用）
	Collision   string `json:"collision"`   // 重名处理策略（overwrite/rename/skip）

	// ==================== 内部路径（不序列化）====================
	DataDir string `json:"-"` // 数据目录路径 (~/.sweep)
}

// 单例模式相关变量
var (
	instance *Config   // 全局配置实例
	once     sync.Once // 确保只初始化一次
)

// Get 获取全局配置实例（单例模式）
// 首次调用时会初始化默认配置并尝试从文件加载
func Get() *Config {
	once.Do(func() {
		instance = Default() // 创建默认配置
		instance.initPaths() // 初始化路径
		instance.Load()      // 从文件加载（如果存在）
	})
	return instance
}

// Default 创建默认配置
// 返回带有出厂默认值的配置实例
func Default() *Config {
	return &Config{
		Destination: DefaultDestination, // 默认移动到 ./dist
		Collision:   DefaultCollision,   // 重名时自动加数字后缀
	}
}

// initPaths 初始化数据存储路径
// 创建 ~/.sweep 目录（如果不存在）
func (c *Config) initPaths() {
	homeDir, _ := os.UserHomeDir()
	c.DataDir = filepath.Join(homeDir, ".sweep") // 数据目录
	os.MkdirAll(c.DataDir, 0755)                 // 创建目录
}

// Load 从文件加载配置
// 配置文件路径: ~/.sweep/config.json
func (c *Config) Load() error {
	configPath := filepath.Join(c.DataDir, "config.json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err // 文件不存在时返回错误，使用默认配置
	}
	return json.Unmarshal(data, c)
}

// Save 保存配置到文件
// 以格式化的 JSON 格式保存
func (c *Config) Save() error {
	configPath := filepath.Join(c.DataDir, "config.json")
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// Reset 恢复出厂默认值
// 保留数据目录路径，只重置可配置项
func (c *Config) Reset() {
	c.Destination = DefaultDestination
	c.Collision = DefaultCollision
}
