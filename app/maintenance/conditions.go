package maintenance

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Conditions gates housekeeping runs on system state, so sweeps never compete
// with a live session for I/O.
type Conditions struct {
	CPUBelow    int         // skip when CPU usage percent is at or above, 0 disables
	MemoryBelow int         // skip when memory usage percent is at or above, 0 disables
	SimRunning  func() bool // skip while a simulator session is live, nil disables
}

// Check verifies if all conditions are met.
// Returns true if conditions are satisfied, false with reason otherwise.
func (c Conditions) Check() (bool, string) {
	if c.SimRunning != nil && c.SimRunning() {
		return false, "simulator session is live"
	}

	if c.CPUBelow > 0 {
		if ok, reason := checkCPU(c.CPUBelow); !ok {
			return false, reason
		}
	}

	if c.MemoryBelow > 0 {
		if ok, reason := checkMemory(c.MemoryBelow); !ok {
			return false, reason
		}
	}

	return true, ""
}

// checkCPU checks if CPU usage is below threshold
func checkCPU(threshold int) (bool, string) {
	cpuPercent, err := cpu.Percent(time.Second, false)
	if err != nil {
		return false, fmt.Sprintf("failed to get CPU: %v", err)
	}
	if len(cpuPercent) == 0 {
		return false, "no CPU data available"
	}
	current := int(cpuPercent[0])
	if current >= threshold {
		return false, fmt.Sprintf("CPU at %d%%, threshold %d%%", current, threshold)
	}
	return true, ""
}

// checkMemory checks if memory usage is below threshold
func checkMemory(threshold int) (bool, string) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return false, fmt.Sprintf("failed to get memory: %v", err)
	}
	current := int(v.UsedPercent)
	if current >= threshold {
		return false, fmt.Sprintf("memory at %d%%, threshold %d%%", current, threshold)
	}
	return true, ""
}
