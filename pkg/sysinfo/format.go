package sysinfo

import (
	"fmt"
	"strconv"
)

func itoa(v int) string {
	return strconv.Itoa(v)
}

func formatCores(physical, logical int) string {
	return fmt.Sprintf("%d physical, %d logical", physical, logical)
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
