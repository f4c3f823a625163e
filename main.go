// Sweep - 文件清扫，按扩展名归档
// 递归遍历源目录，将所有文件移动到目标目录下按扩展名命名的分类子目录中
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep
// License: MIT

package main

import "sweep/cmd"

// main 程序入口函数
// 调用 cmd.Execute() 启动命令行应用
func main() {
	cmd.Execute()
}
