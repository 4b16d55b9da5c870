package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Pressure holds the memory pressure stall averages from
// /proc/pressure/memory. Values are percentages.
type Pressure struct {
	SomeAvg10  float64
	SomeAvg60  float64
	SomeAvg300 float64
	FullAvg10  float64
	FullAvg60  float64
	FullAvg300 float64
}

func psiAvgs(fields []string) (avg10, avg60, avg300 float64, err error) {
	if len(fields) < 4 {
		return 0, 0, 0, fmt.Errorf("unexpected pressure row: %v",
			strings.Join(fields, " "))
	}
	avgs := [3]float64{}
	for i := 0; i < 3; i++ {
		kv := strings.SplitN(fields[i+1], "=", 2)
		if len(kv) != 2 {
			return 0, 0, 0, fmt.Errorf("unexpected pressure "+
				"field: %q", fields[i+1])
		}
		avgs[i], err = strconv.ParseFloat(kv[1], 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid pressure value "+
				"%q: %v", kv[1], err)
		}
	}
	return avgs[0], avgs[1], avgs[2], nil
}

// ProcessPressure parses raw /proc/pressure/memory contents. Only the
// avg10/avg60/avg300 columns of the some and full rows are kept.
func ProcessPressure(b []byte) (*Pressure, error) {
	p := &Pressure{}
	seen := 0

	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		var err error
		switch fields[0] {
		case "some":
			p.SomeAvg10, p.SomeAvg60, p.SomeAvg300, err = psiAvgs(fields)
		case "full":
			p.FullAvg10, p.FullAvg60, p.FullAvg300, err = psiAvgs(fields)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		seen++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if seen < 2 {
		return nil, fmt.Errorf("unexpected pressure format")
	}

	return p, nil
}
