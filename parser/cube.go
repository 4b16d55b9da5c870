package parser

import (
	"github.com/businessperformancetuning/zfree/report"
)

// CubeMeminfo derives the memory report row from a meminfo record and,
// when a zram swap device exists, its mm_stat record. All arithmetic
// happens in the counters' native units; conversion and rounding are
// the renderer's problem.
func CubeMeminfo(mi *Meminfo, mm *MMStat) *report.Memory {
	bufCache := mi.Buffers + mi.Cached

	// used is defined as total-free-bufcache, not an independently
	// summed value, so that used+bufcache+free == total holds
	// exactly.
	var used uint64
	if bufCache+mi.MemFree < mi.MemTotal {
		used = mi.MemTotal - mi.MemFree - bufCache
	}

	m := &report.Memory{
		Total:     mi.MemTotal,
		Used:      used,
		Available: mi.MemAvailable,
		BufCache:  bufCache,
		Free:      mi.MemFree,
	}
	if mm != nil {
		// The +1 denominator avoids division by zero on a
		// freshly initialized device at the cost of a small bias
		// in the ratio.
		m.Zram = &report.Zram{
			CompData:  mm.OrigDataSize,
			CompTotal: mm.MemUsedTotal,
			CompRatio: float64(mm.OrigDataSize) /
				float64(mm.MemUsedTotal+1),
		}
	}
	return m
}

// CubeSwap derives the swap report row from a disk swap device entry.
// A nil device means no swap row at all.
func CubeSwap(dev *SwapDevice) *report.Swap {
	if dev == nil {
		return nil
	}

	// Guard against a kernel row claiming more used than the device
	// size; free would otherwise wrap around.
	var free uint64
	if dev.Used < dev.Size {
		free = dev.Size - dev.Used
	}
	return &report.Swap{
		Total: dev.Size,
		Used:  dev.Used,
		Free:  free,
	}
}
