package sysinfo

import (
	"runtime"
	"strings"

	"github.com/klauspost/cpuid"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	log "github.com/sirupsen/logrus"
)

// Info describes the host a benchmark ran on.
type Info struct {
	CPU           string   `yaml:"cpu"`
	PhysicalCores int      `yaml:"physical_cores"`
	LogicalCores  int      `yaml:"logical_cores"`
	SIMD          []string `yaml:"simd"`
	GoMaxProcs    int      `yaml:"gomaxprocs"`
	GoVersion     string   `yaml:"go_version"`
	Platform      string   `yaml:"platform,omitempty"`
	Kernel        string   `yaml:"kernel,omitempty"`
	MemoryTotal   uint64   `yaml:"memory_total,omitempty"`
	MemoryFree    uint64   `yaml:"memory_available,omitempty"`
}

func simdFeatures() []string {
	features := make([]string, 0)
	for _, f := range []struct {
		name      string
		supported bool
	}{
		{"sse", cpuid.CPU.SSE()},
		{"sse2", cpuid.CPU.SSE2()},
		{"sse4.1", cpuid.CPU.SSE4()},
		{"sse4.2", cpuid.CPU.SSE42()},
		{"avx", cpuid.CPU.AVX()},
		{"avx2", cpuid.CPU.AVX2()},
		{"fma3", cpuid.CPU.FMA3()},
		{"avx512f", cpuid.CPU.AVX512F()},
	} {
		if f.supported {
			features = append(features, f.name)
		}
	}
	return features
}

// Collect gathers CPU and memory details. Failures to query the OS are logged
// and leave the corresponding fields empty.
func Collect() Info {
	info := Info{
		CPU:           strings.TrimSpace(cpuid.CPU.BrandName),
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		SIMD:          simdFeatures(),
		GoMaxProcs:    runtime.GOMAXPROCS(0),
		GoVersion:     runtime.Version(),
	}
	if info.LogicalCores == 0 {
		info.LogicalCores = runtime.NumCPU()
	}
	if info.CPU == "" {
		info.CPU = runtime.GOARCH
	}

	if h, err := host.Info(); err != nil {
		log.WithError(err).Debug("Host info unavailable")
	} else {
		info.Platform = strings.TrimSpace(h.Platform + " " + h.PlatformVersion)
		info.Kernel = h.KernelVersion
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		log.WithError(err).Debug("Memory info unavailable")
	} else {
		info.MemoryTotal = vm.Total
		info.MemoryFree = vm.Available
	}

	return info
}

// Rows renders the info as key/value pairs for tabular output.
func (info Info) Rows() [][]string {
	return [][]string{
		{"cpu", info.CPU},
		{"cores", formatCores(info.PhysicalCores, info.LogicalCores)},
		{"simd", strings.Join(info.SIMD, " ")},
		{"gomaxprocs", itoa(info.GoMaxProcs)},
		{"go", info.GoVersion},
		{"platform", info.Platform},
		{"kernel", info.Kernel},
		{"memory", formatBytes(info.MemoryFree) + " / " + formatBytes(info.MemoryTotal)},
	}
}
