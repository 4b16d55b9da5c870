package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Meminfo is the subset of /proc/meminfo that the report needs. All
// values are in KiB, exactly as the kernel reports them.
type Meminfo struct {
	MemTotal     uint64
	MemFree      uint64
	MemAvailable uint64
	Buffers      uint64
	Cached       uint64
}

// requiredMeminfo lists the fields that must be present in a readable
// /proc/meminfo. MemAvailable only exists on 3.14+ kernels; anything
// older is not supported.
var requiredMeminfo = []string{
	"MemTotal",
	"MemFree",
	"MemAvailable",
	"Buffers",
	"Cached",
}

// ProcessMeminfo parses raw /proc/meminfo contents into a Meminfo
// record. A recognized field with an unparsable value is an error, as
// is the absence of any required field.
func ProcessMeminfo(b []byte) (*Meminfo, error) {
	mi := &Meminfo{}
	seen := make(map[string]struct{}, len(requiredMeminfo))

	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		key := strings.TrimSuffix(fields[0], ":")

		var target *uint64
		switch key {
		case "MemTotal":
			target = &mi.MemTotal
		case "MemFree":
			target = &mi.MemFree
		case "MemAvailable":
			target = &mi.MemAvailable
		case "Buffers":
			target = &mi.Buffers
		case "Cached":
			target = &mi.Cached
		default:
			continue
		}

		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %v value %q: %v",
				key, fields[1], err)
		}
		*target = value
		seen[key] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, key := range requiredMeminfo {
		if _, ok := seen[key]; !ok {
			return nil, fmt.Errorf("%v missing from meminfo", key)
		}
	}
	log.Tracef("meminfo: total %v available %v free %v",
		mi.MemTotal, mi.MemAvailable, mi.MemFree)

	return mi, nil
}
