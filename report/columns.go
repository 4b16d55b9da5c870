package report

import (
	"fmt"
	"strings"
)

// Column identifies one selectable output column.
type Column string

const (
	ColTotal     Column = "total"
	ColUsed      Column = "used"
	ColAvailable Column = "available"
	ColBufCache  Column = "bufcache"
	ColFree      Column = "free"
	ColCompData  Column = "compdata"
	ColCompTotal Column = "comptotal"
	ColCompRatio Column = "compratio"
)

// knownColumns is the closed set of column names, in default order.
var knownColumns = []Column{
	ColTotal,
	ColUsed,
	ColAvailable,
	ColBufCache,
	ColFree,
	ColCompData,
	ColCompTotal,
	ColCompRatio,
}

// DefaultColumns returns the column list used when the caller does not
// select one. The zram columns are only included when a zram device is
// present.
func DefaultColumns(zram bool) []Column {
	cols := []Column{ColTotal, ColUsed, ColAvailable, ColBufCache,
		ColFree}
	if zram {
		cols = append(cols, ColCompData, ColCompTotal, ColCompRatio)
	}
	return cols
}

// ParseColumns parses a comma-separated column list. Columns render in
// the exact order requested; an unknown or duplicate name is an error.
func ParseColumns(s string) ([]Column, error) {
	fields := strings.Split(s, ",")
	cols := make([]Column, 0, len(fields))
	seen := make(map[Column]struct{}, len(fields))
	for _, f := range fields {
		c := Column(strings.TrimSpace(f))
		known := false
		for _, k := range knownColumns {
			if c == k {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown column: %v", c)
		}
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("duplicate column: %v", c)
		}
		seen[c] = struct{}{}
		cols = append(cols, c)
	}
	return cols, nil
}
