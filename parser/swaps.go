package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// SwapDevice is one row of /proc/swaps. Size and Used are in KiB.
type SwapDevice struct {
	Filename string
	Type     string
	Size     uint64
	Used     uint64
}

// ProcessSwaps parses raw /proc/swaps contents. The header row is
// skipped; an empty device list is valid and means no swap of any kind
// is configured.
func ProcessSwaps(b []byte) ([]SwapDevice, error) {
	var devs []SwapDevice

	scanner := bufio.NewScanner(bytes.NewReader(b))
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			// Column headings.
			first = false
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("unexpected swaps row: %q", line)
		}
		size, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid swap size %q: %v",
				fields[2], err)
		}
		used, err := strconv.ParseUint(fields[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid swap used %q: %v",
				fields[3], err)
		}
		devs = append(devs, SwapDevice{
			Filename: fields[0],
			Type:     fields[1],
			Size:     size,
			Used:     used,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Tracef("swaps: %v device(s)", len(devs))

	return devs, nil
}

// ZramDevice returns the first zram swap device in devs, or nil when
// there is none. Having more than one zram swap device is uncommon and
// unsupported; extra ones are ignored.
func ZramDevice(devs []SwapDevice) *SwapDevice {
	for i := range devs {
		if strings.Contains(devs[i].Filename, "zram") {
			return &devs[i]
		}
	}
	return nil
}

// DiskDevice returns the sole non-zram swap device in devs, nil when
// there is none, and an error when there is more than one.
func DiskDevice(devs []SwapDevice) (*SwapDevice, error) {
	var disk *SwapDevice
	for i := range devs {
		if strings.Contains(devs[i].Filename, "zram") {
			continue
		}
		if disk != nil {
			return nil, fmt.Errorf("multiple disk swap devices " +
				"are unsupported")
		}
		disk = &devs[i]
	}
	return disk, nil
}

// MMStatPath returns the sysfs mm_stat path for a zram swap device,
// e.g. /dev/zram0 -> /sys/class/block/zram0/mm_stat.
func MMStatPath(dev *SwapDevice) string {
	return filepath.Join("/sys/class/block",
		filepath.Base(dev.Filename), "mm_stat")
}
