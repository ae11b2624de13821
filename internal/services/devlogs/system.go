package devlogs

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_system_info.go github.com/KirkDiggler/noobcogs/internal/services/devlogs SystemInfo

// SystemInfo reads host statistics
type SystemInfo interface {
	Collect(ctx context.Context) (*SystemReport, error)
}

// SystemReport is a snapshot of the host and the bot process
type SystemReport struct {
	Platform        string
	PlatformVersion string
	KernelVersion   string
	Hostname        string
	HostUptime      time.Duration

	GoVersion  string
	Goroutines int

	CPUCount   int
	CPUPercent float64

	MemUsedPercent float64
	MemUsed        uint64
	MemTotal       uint64
}

// HostInfo implements SystemInfo with gopsutil
type HostInfo struct{}

// Collect gathers the report. CPU usage is measured since the previous call.
func (h *HostInfo) Collect(ctx context.Context) (*SystemReport, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	counts, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to read cpu count: %w", err)
	}

	percent, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read cpu usage: %w", err)
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read memory: %w", err)
	}

	report := &SystemReport{
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		Hostname:        info.Hostname,
		HostUptime:      time.Duration(info.Uptime) * time.Second,
		GoVersion:       runtime.Version(),
		Goroutines:      runtime.NumGoroutine(),
		CPUCount:        counts,
		MemUsedPercent:  vm.UsedPercent,
		MemUsed:         vm.Used,
		MemTotal:        vm.Total,
	}
	if len(percent) > 0 {
		report.CPUPercent = percent[0]
	}

	return report, nil
}
