package parser

import (
	"testing"
)

// Sample /proc/pressure/memory content for testing
const samplePressure = `some avg10=0.12 avg60=1.34 avg300=0.56 total=12345678
full avg10=0.01 avg60=0.20 avg300=0.03 total=2345678
`

func TestProcessPressure(t *testing.T) {
	p, err := ProcessPressure([]byte(samplePressure))
	if err != nil {
		t.Fatalf("ProcessPressure failed: %v", err)
	}

	if p.SomeAvg10 != 0.12 {
		t.Errorf("expected SomeAvg10=0.12, got %v", p.SomeAvg10)
	}
	if p.SomeAvg60 != 1.34 {
		t.Errorf("expected SomeAvg60=1.34, got %v", p.SomeAvg60)
	}
	if p.SomeAvg300 != 0.56 {
		t.Errorf("expected SomeAvg300=0.56, got %v", p.SomeAvg300)
	}
	if p.FullAvg10 != 0.01 {
		t.Errorf("expected FullAvg10=0.01, got %v", p.FullAvg10)
	}
	if p.FullAvg60 != 0.20 {
		t.Errorf("expected FullAvg60=0.20, got %v", p.FullAvg60)
	}
	if p.FullAvg300 != 0.03 {
		t.Errorf("expected FullAvg300=0.03, got %v", p.FullAvg300)
	}
}

func TestProcessPressureEmpty(t *testing.T) {
	_, err := ProcessPressure([]byte(""))
	if err == nil {
		t.Error("expected error for empty pressure file")
	}
}

func TestProcessPressureMissingFull(t *testing.T) {
	someOnly := "some avg10=0.00 avg60=0.00 avg300=0.00 total=0\n"
	_, err := ProcessPressure([]byte(someOnly))
	if err == nil {
		t.Error("expected error for pressure file without full row")
	}
}

func TestProcessPressureInvalid(t *testing.T) {
	invalid := `some avg10=x avg60=0.00 avg300=0.00 total=0
full avg10=0.00 avg60=0.00 avg300=0.00 total=0
`
	_, err := ProcessPressure([]byte(invalid))
	if err == nil {
		t.Error("expected error for invalid pressure value")
	}
}
