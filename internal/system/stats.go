package system

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats describes the cost of one generation run.
type Stats struct {
	Build   string
	Frames  int
	Elapsed time.Duration
	RSS     uint64
	UserCPU float64
	SysCPU  float64
	procErr error
}

// Collect samples the current process. Process figures are left at zero when
// the platform does not expose them.
func Collect(build string, frames int, elapsed time.Duration) Stats {
	s := Stats{Build: build, Frames: frames, Elapsed: elapsed}

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		s.procErr = err
		return s
	}
	if mem, err := p.MemoryInfo(); err == nil {
		s.RSS = mem.RSS
	} else {
		s.procErr = err
	}
	if times, err := p.Times(); err == nil {
		s.UserCPU = times.User
		s.SysCPU = times.System
	} else {
		s.procErr = err
	}
	return s
}

func (s Stats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

func (s Stats) Report() string {
	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Frames: %d\n"+
			"Total Time: %.2fs\n"+
			"Effective FPS: %.2f\n",
		s.Build, s.Frames, s.Elapsed.Seconds(), s.FPS(),
	)
	if s.procErr != nil {
		report += fmt.Sprintf("Process stats unavailable: %v\n", s.procErr)
	} else {
		report += fmt.Sprintf("RSS: %s\nCPU: user %.2fs, sys %.2fs\n", humanize.Bytes(s.RSS), s.UserCPU, s.SysCPU)
	}
	return report + "----------------------------\n"
}
