package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHandler reports host-level resource usage for the admin
// dashboard's system panel.
type SystemHandler struct {
	started time.Time
}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{started: time.Now()}
}

// Get handles GET /api/admin/system (admin). Every probe is best effort;
// a sensor that fails just reports zero.
func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, _ := mem.VirtualMemory()
	c, _ := cpu.Percent(0, false)
	d, _ := disk.Usage("/")
	hostInfo, _ := host.Info()

	cpuPercent := 0.0
	if len(c) > 0 {
		cpuPercent = c[0]
	}

	var memPercent, diskPercent float64
	var memUsed, memTotal, diskUsed, diskTotal uint64
	if v != nil {
		memPercent, memUsed, memTotal = v.UsedPercent, v.Used, v.Total
	}
	if d != nil {
		diskPercent, diskUsed, diskTotal = d.UsedPercent, d.Used, d.Total
	}

	hostname := ""
	var hostUptime uint64
	if hostInfo != nil {
		hostname = hostInfo.Hostname
		hostUptime = hostInfo.Uptime
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"hostname":          hostname,
		"platform":          runtime.GOOS,
		"goroutines":        runtime.NumGoroutine(),
		"cpu_percent":       cpuPercent,
		"memory_percent":    memPercent,
		"memory_used_mb":    float64(memUsed) / 1024 / 1024,
		"memory_total_mb":   float64(memTotal) / 1024 / 1024,
		"disk_percent":      diskPercent,
		"disk_used_gb":      float64(diskUsed) / 1024 / 1024 / 1024,
		"disk_total_gb":     float64(diskTotal) / 1024 / 1024 / 1024,
		"host_uptime_sec":   hostUptime,
		"server_uptime_sec": int64(time.Since(h.started).Seconds()),
	})
}
