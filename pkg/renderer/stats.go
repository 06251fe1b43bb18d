package renderer

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
)

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels   int
	TotalSamples  int
	TilesRendered int
	Workers       int
	Elapsed       time.Duration
}

// SamplesPerSecond returns the effective primary-sample throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// DefaultWorkerCount returns the number of logical CPUs reported by the
// host, falling back to the Go runtime's view when the probe fails
func DefaultWorkerCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return runtime.NumCPU()
	}
	return count
}

// LogHostInfo prints the CPU model and memory of the machine running the
// render, so throughput numbers in logs can be compared across hosts
func LogHostInfo(logger core.Logger) {
	if logger == nil {
		return
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		logger.Printf("CPU: %s (%d logical cores)\n", infos[0].ModelName, DefaultWorkerCount())
	} else {
		logger.Printf("CPU: %d logical cores\n", DefaultWorkerCount())
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Printf("Memory: %.1f GB total, %.1f%% used\n",
			float64(vm.Total)/(1<<30), vm.UsedPercent)
	}
}
