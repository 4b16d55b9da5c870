package parser

import (
	"testing"
)

// Sample /proc/swaps content for testing
const sampleProcSwaps = `Filename				Type		Size	Used	Priority
/dev/zram0                              partition	4194300	1048576	100
/dev/sda2                               partition	8388604	524288	-2
`

const sampleProcSwapsZramOnly = `Filename				Type		Size	Used	Priority
/dev/zram0                              partition	4194300	0	100
`

const sampleProcSwapsDiskOnly = `Filename				Type		Size	Used	Priority
/swapfile                               file		2097148	262144	-2
`

const sampleProcSwapsEmpty = `Filename				Type		Size	Used	Priority
`

func TestProcessSwaps(t *testing.T) {
	devs, err := ProcessSwaps([]byte(sampleProcSwaps))
	if err != nil {
		t.Fatalf("ProcessSwaps failed: %v", err)
	}
	if len(devs) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(devs))
	}

	if devs[0].Filename != "/dev/zram0" {
		t.Errorf("expected /dev/zram0, got %v", devs[0].Filename)
	}
	if devs[0].Type != "partition" {
		t.Errorf("expected partition, got %v", devs[0].Type)
	}
	if devs[0].Size != 4194300 {
		t.Errorf("expected Size=4194300, got %d", devs[0].Size)
	}
	if devs[0].Used != 1048576 {
		t.Errorf("expected Used=1048576, got %d", devs[0].Used)
	}

	if devs[1].Filename != "/dev/sda2" {
		t.Errorf("expected /dev/sda2, got %v", devs[1].Filename)
	}
	if devs[1].Size != 8388604 {
		t.Errorf("expected Size=8388604, got %d", devs[1].Size)
	}
}

func TestProcessSwapsEmpty(t *testing.T) {
	devs, err := ProcessSwaps([]byte(sampleProcSwapsEmpty))
	if err != nil {
		t.Fatalf("ProcessSwaps failed: %v", err)
	}
	if len(devs) != 0 {
		t.Errorf("expected no devices, got %d", len(devs))
	}
}

func TestProcessSwapsMalformed(t *testing.T) {
	malformed := `Filename				Type		Size	Used	Priority
/dev/sda2 partition notanumber 0 -2
`
	_, err := ProcessSwaps([]byte(malformed))
	if err == nil {
		t.Error("expected error for malformed swaps row")
	}
}

func TestZramDevice(t *testing.T) {
	devs, err := ProcessSwaps([]byte(sampleProcSwaps))
	if err != nil {
		t.Fatalf("ProcessSwaps failed: %v", err)
	}
	z := ZramDevice(devs)
	if z == nil {
		t.Fatal("expected a zram device")
	}
	if z.Filename != "/dev/zram0" {
		t.Errorf("expected /dev/zram0, got %v", z.Filename)
	}
}

func TestZramDeviceAbsent(t *testing.T) {
	devs, err := ProcessSwaps([]byte(sampleProcSwapsDiskOnly))
	if err != nil {
		t.Fatalf("ProcessSwaps failed: %v", err)
	}
	if z := ZramDevice(devs); z != nil {
		t.Errorf("expected no zram device, got %v", z.Filename)
	}
	if z := ZramDevice(nil); z != nil {
		t.Errorf("expected no zram device from nil list, got %v",
			z.Filename)
	}
}

func TestDiskDevice(t *testing.T) {
	devs, err := ProcessSwaps([]byte(sampleProcSwaps))
	if err != nil {
		t.Fatalf("ProcessSwaps failed: %v", err)
	}
	disk, err := DiskDevice(devs)
	if err != nil {
		t.Fatalf("DiskDevice failed: %v", err)
	}
	if disk == nil {
		t.Fatal("expected a disk device")
	}
	if disk.Filename != "/dev/sda2" {
		t.Errorf("expected /dev/sda2, got %v", disk.Filename)
	}
}

func TestDiskDeviceAbsent(t *testing.T) {
	devs, err := ProcessSwaps([]byte(sampleProcSwapsZramOnly))
	if err != nil {
		t.Fatalf("ProcessSwaps failed: %v", err)
	}
	disk, err := DiskDevice(devs)
	if err != nil {
		t.Fatalf("DiskDevice failed: %v", err)
	}
	if disk != nil {
		t.Errorf("expected no disk device, got %v", disk.Filename)
	}
}

func TestDiskDeviceMultiple(t *testing.T) {
	multiple := `Filename				Type		Size	Used	Priority
/dev/sda2                               partition	8388604	0	-2
/swapfile                               file		2097148	0	-3
`
	devs, err := ProcessSwaps([]byte(multiple))
	if err != nil {
		t.Fatalf("ProcessSwaps failed: %v", err)
	}
	_, err = DiskDevice(devs)
	if err == nil {
		t.Error("expected error for multiple disk swap devices")
	}
}

func TestMMStatPath(t *testing.T) {
	dev := &SwapDevice{Filename: "/dev/zram0"}
	expected := "/sys/class/block/zram0/mm_stat"
	if p := MMStatPath(dev); p != expected {
		t.Errorf("expected %v, got %v", expected, p)
	}
}

// Benchmark tests
func BenchmarkProcessSwaps(b *testing.B) {
	data := []byte(sampleProcSwaps)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ProcessSwaps(data)
	}
}
