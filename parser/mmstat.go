package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// MMStat holds the zram counters the report needs out of a zram
// device's mm_stat file. Both values are in bytes.
type MMStat struct {
	OrigDataSize uint64 // uncompressed data stored in the device
	MemUsedTotal uint64 // physical memory occupied by the device
}

// ProcessMMStat parses raw mm_stat contents. The file is a single line
// of whitespace-separated counters; orig_data_size is the first field
// and mem_used_total the third.
func ProcessMMStat(b []byte) (*MMStat, error) {
	fields := strings.Fields(string(b))
	if len(fields) < 3 {
		return nil, fmt.Errorf("unexpected mm_stat format: %v fields",
			len(fields))
	}
	orig, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid orig_data_size %q: %v",
			fields[0], err)
	}
	used, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid mem_used_total %q: %v",
			fields[2], err)
	}
	return &MMStat{
		OrigDataSize: orig,
		MemUsedTotal: used,
	}, nil
}
