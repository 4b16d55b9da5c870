// Package report holds the derived memory, swap and zram metric rows
// and renders them as an aligned table of caller-selected columns.
package report

import (
	"fmt"
	"strings"
)

// placeholder is rendered for a column that is undefined on a row, e.g.
// the zram columns on the swap row.
const placeholder = "-"

// DefaultWidth is the historical per-column field width.
const DefaultWidth = 11

// Zram holds the derived compressed-swap metrics. The byte counters
// come straight from mm_stat; CompRatio is dimensionless.
type Zram struct {
	CompData  uint64 // uncompressed data stored, bytes
	CompTotal uint64 // physical memory occupied, bytes
	CompRatio float64
}

// Memory is the derived memory row. Counter values are in KiB and
// satisfy Used+BufCache+Free == Total exactly. Zram is nil when no
// zram swap device exists.
type Memory struct {
	Total     uint64
	Used      uint64
	Available uint64
	BufCache  uint64
	Free      uint64
	Zram      *Zram
}

// Swap is the derived disk-swap row, in KiB.
type Swap struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// Options control value formatting.
type Options struct {
	Unit   Unit // fixed display unit; ignored when Human is set
	NoUnit bool // suppress unit suffixes
	Human  bool // autorange each value instead of using Unit
	SI     bool // with Human, use powers of 1000
	Width  int  // per-column field width, DefaultWidth if <= 0
}

// cell is one (columnName, displayValue) pair of a data row.
type cell struct {
	col   Column
	value string
}

func (o Options) formatBytes(b uint64) (string, error) {
	if o.Human {
		return Human(b, o.SI), nil
	}
	return formatUnit(b, o.Unit, o.NoUnit)
}

func (o Options) formatKiB(kib uint64) (string, error) {
	return o.formatBytes(kib << 10)
}

// memoryCells produces the memory row values for the requested columns.
// The zram columns render the placeholder when no zram device exists;
// an explicit request for them is not an error.
func memoryCells(cols []Column, m *Memory, o Options) ([]cell, error) {
	cells := make([]cell, 0, len(cols))
	for _, c := range cols {
		var s string
		var err error
		switch c {
		case ColTotal:
			s, err = o.formatKiB(m.Total)
		case ColUsed:
			s, err = o.formatKiB(m.Used)
		case ColAvailable:
			s, err = o.formatKiB(m.Available)
		case ColBufCache:
			s, err = o.formatKiB(m.BufCache)
		case ColFree:
			s, err = o.formatKiB(m.Free)
		case ColCompData:
			if m.Zram == nil {
				s = placeholder
				break
			}
			s, err = o.formatBytes(m.Zram.CompData)
		case ColCompTotal:
			if m.Zram == nil {
				s = placeholder
				break
			}
			s, err = o.formatBytes(m.Zram.CompTotal)
		case ColCompRatio:
			if m.Zram == nil {
				s = placeholder
				break
			}
			s = fmt.Sprintf("%.2f", m.Zram.CompRatio)
		default:
			err = fmt.Errorf("unknown column: %v", c)
		}
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell{col: c, value: s})
	}
	return cells, nil
}

// swapCells produces the swap row values for the requested columns.
// Only total, used and free are meaningful on swap.
func swapCells(cols []Column, sw *Swap, o Options) ([]cell, error) {
	cells := make([]cell, 0, len(cols))
	for _, c := range cols {
		var s string
		var err error
		switch c {
		case ColTotal:
			s, err = o.formatKiB(sw.Total)
		case ColUsed:
			s, err = o.formatKiB(sw.Used)
		case ColFree:
			s, err = o.formatKiB(sw.Free)
		default:
			s = placeholder
		}
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell{col: c, value: s})
	}
	return cells, nil
}

// labelWidth fits the row labels.
const labelWidth = len("Swap:")

func writeRow(sb *strings.Builder, label string, cells []cell, width int) {
	fmt.Fprintf(sb, "%-*s", labelWidth, label)
	for _, c := range cells {
		fmt.Fprintf(sb, "%*s", width, c.value)
	}
	sb.WriteByte('\n')
}

// Format renders the header, the memory row and, when swap is non-nil,
// the swap row, with every field right-aligned in fixed-width columns.
// The output is byte-for-byte deterministic for a given snapshot.
func Format(cols []Column, mem *Memory, swap *Swap, o Options) (string, error) {
	if len(cols) == 0 {
		return "", fmt.Errorf("no columns selected")
	}
	if !o.Human && !o.Unit.valid() {
		return "", fmt.Errorf("unknown unit: %v", o.Unit)
	}
	width := o.Width
	if width <= 0 {
		width = DefaultWidth
	}

	memRow, err := memoryCells(cols, mem, o)
	if err != nil {
		return "", err
	}
	var swapRow []cell
	if swap != nil {
		swapRow, err = swapCells(cols, swap, o)
		if err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s", labelWidth, "")
	for _, c := range cols {
		fmt.Fprintf(&sb, "%*s", width, string(c))
	}
	sb.WriteByte('\n')

	writeRow(&sb, "Mem:", memRow, width)
	if swap != nil {
		writeRow(&sb, "Swap:", swapRow, width)
	}

	return sb.String(), nil
}
