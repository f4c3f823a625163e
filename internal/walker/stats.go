// Package walker 目录遍历模块
// stats.go - 按分类目录统计文件分布，供 scan 命令展示
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/sweep

package walker

import (
	"sort"

	"sweep/internal/bucket"
	"sweep/internal/ui"
)

// ==================== 统计相关类型 ====================

// Statistics 文件统计信息
type Statistics struct {
	TotalFiles int                   // 文件总数
	TotalDirs  int                   // 目录总数
	TotalSize  int64                 // 总大小（字节）
	Buckets    map[string]BucketStat // 按分类目录统计
}

// BucketStat 单个分类目录的统计
type BucketStat struct {
	Count int   // 文件数量
	Size  int64 // 总大小
}

// ==================== 统计函数 ====================

// Collect 遍历目录并收集统计信息
// 只读操作，不移动任何文件；返回统计结果和目录读取失败记录
func Collect(dir string) (Statistics, []ReadFailure) {
	stats := Statistics{
		Buckets: make(map[string]BucketStat),
	}

	failures := New("").Walk(dir, func(e Entry) {
		if e.IsDir {
			stats.TotalDirs++
			return
		}

		stats.TotalFiles++
		stats.TotalSize += e.Size

		// 按归属的分类目录统计
		b := bucket.ForName(e.Name)
		bs := stats.Buckets[b]
		bs.Count++
		bs.Size += e.Size
		stats.Buckets[b] = bs
	})

	return stats, failures
}

// PrintStatistics 打印统计信息
// 以美观的格式显示文件在各分类目录间的分布
func PrintStatistics(stats Statistics) {
	ui.Title("📊", "文件统计")
	ui.Divider()

	// 基本统计
	ui.Info("📁 文件夹: %d 个", stats.TotalDirs)
	ui.Info("📄 文件:   %d 个", stats.TotalFiles)
	ui.Info("💾 总大小: %s", ui.FormatSize(stats.TotalSize))

	// 按分类目录统计（如果有数据）
	if len(stats.Buckets) > 0 {
		ui.Info("")
		ui.Info("按分类统计:")

		// 按数量排序
		type kv struct {
			Bucket string
			Stat   BucketStat
		}
		var sorted []kv
		for k, v := range stats.Buckets {
			sorted = append(sorted, kv{k, v})
		}
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Stat.Count > sorted[j].Stat.Count // 按数量降序
		})

		// 显示前12种分类
		for i, kv := range sorted {
			if i >= 12 {
				ui.Dim("  ... 还有 %d 种分类", len(sorted)-12)
				break
			}
			ui.Info("  %-12s %4d 个  %10s", kv.Bucket, kv.Stat.Count, ui.FormatSize(kv.Stat.Size))
		}
	}
}
