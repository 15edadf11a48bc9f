package telemetry

import (
	"context"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/shirou/gopsutil/v4/process"
)

// ProcessDetector finds a running simulator by scanning the process table for
// the executable names listed in the config.
type ProcessDetector struct {
	cfg *Config
}

// NewProcessDetector makes a detector for the configured simulators.
func NewProcessDetector(cfg *Config) *ProcessDetector {
	return &ProcessDetector{cfg: cfg}
}

// Detect returns the first configured simulator with a live process.
// Executable names match case-insensitively.
func (d *ProcessDetector) Detect(ctx context.Context) (SimConfig, bool) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		log.Printf("[WARN] can't list processes, %v", err)
		return SimConfig{}, false
	}

	running := make(map[string]struct{}, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue // process gone or not visible to us
		}
		running[strings.ToLower(name)] = struct{}{}
	}

	for _, sim := range d.cfg.Sims {
		for _, exe := range sim.Exe {
			if _, ok := running[strings.ToLower(exe)]; ok {
				return sim, true
			}
		}
	}
	return SimConfig{}, false
}
