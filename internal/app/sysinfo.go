package app

import (
	"fmt"
	"time"

	"github.com/Gaurav-Gosain/termfolio/internal/config"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// UpdateSysinfo refreshes the cached CPU and RAM readouts shown in the
// dock. Sampling is throttled; ticks between samples reuse the cache.
// Remote sessions skip sampling entirely: the server's load is noise to a
// visitor and not theirs to see.
func (d *Desk) UpdateSysinfo() {
	if d.IsSSHMode {
		return
	}
	if time.Since(d.LastSysinfoUpdate) < config.SysinfoUpdateInterval*time.Millisecond {
		return
	}
	d.LastSysinfoUpdate = time.Now()

	// Non-blocking sample: interval 0 reports usage since the last call.
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		d.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		d.RAMPercent = vm.UsedPercent
	}
}

// SysinfoLabel returns the fixed-width dock readout to avoid layout shifts.
// Empty in SSH mode, where nothing is sampled.
func (d *Desk) SysinfoLabel() string {
	if d.IsSSHMode {
		return ""
	}
	return fmt.Sprintf("CPU %5.1f%%  RAM %5.1f%%", d.CPUPercent, d.RAMPercent)
}
