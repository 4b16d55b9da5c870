package report

import (
	"testing"
)

func TestParseColumns(t *testing.T) {
	cols, err := ParseColumns("free,total,compratio")
	if err != nil {
		t.Fatalf("ParseColumns failed: %v", err)
	}
	expected := []Column{ColFree, ColTotal, ColCompRatio}
	if len(cols) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected),
			len(cols))
	}
	// Order is exactly as requested.
	for i := range expected {
		if cols[i] != expected[i] {
			t.Errorf("column %d: expected %v, got %v", i,
				expected[i], cols[i])
		}
	}
}

func TestParseColumnsAll(t *testing.T) {
	cols, err := ParseColumns(
		"total,used,available,bufcache,free,compdata,comptotal,compratio")
	if err != nil {
		t.Fatalf("ParseColumns failed: %v", err)
	}
	if len(cols) != 8 {
		t.Errorf("expected 8 columns, got %d", len(cols))
	}
}

func TestParseColumnsUnknown(t *testing.T) {
	_, err := ParseColumns("total,bogus,free")
	if err == nil {
		t.Error("expected error for unknown column")
	}
}

func TestParseColumnsDuplicate(t *testing.T) {
	_, err := ParseColumns("total,free,total")
	if err == nil {
		t.Error("expected error for duplicate column")
	}
}

func TestParseColumnsEmpty(t *testing.T) {
	_, err := ParseColumns("")
	if err == nil {
		t.Error("expected error for empty column list")
	}
}

func TestDefaultColumns(t *testing.T) {
	cols := DefaultColumns(false)
	expected := []Column{ColTotal, ColUsed, ColAvailable, ColBufCache,
		ColFree}
	if len(cols) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected),
			len(cols))
	}
	for i := range expected {
		if cols[i] != expected[i] {
			t.Errorf("column %d: expected %v, got %v", i,
				expected[i], cols[i])
		}
	}

	// The zram columns only appear when a zram device is present.
	zcols := DefaultColumns(true)
	if len(zcols) != 8 {
		t.Fatalf("expected 8 columns, got %d", len(zcols))
	}
	if zcols[5] != ColCompData || zcols[6] != ColCompTotal ||
		zcols[7] != ColCompRatio {
		t.Errorf("unexpected zram columns: %v", zcols[5:])
	}
}
