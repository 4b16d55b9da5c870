package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "zfreeutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	if err := ioutil.WriteFile(name, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if !FileExists(name) {
		t.Errorf("expected %v to exist", name)
	}
	if FileExists(filepath.Join(dir, "absent")) {
		t.Error("expected absent file to not exist")
	}
}

func TestValidSystem(t *testing.T) {
	invalid := []string{
		"/etc/passwd",
		"meminfo",
		"/procx/meminfo",
		"/proc/../etc/passwd",
	}
	for _, s := range invalid {
		if ValidSystem(s) {
			t.Errorf("expected %v to be invalid", s)
		}
	}
}

func TestMeasureInvalid(t *testing.T) {
	if _, err := Measure("/etc/passwd"); err == nil {
		t.Error("expected error for non-system path")
	}
	if _, err := Measure("/proc/definitely-not-a-real-file"); err == nil {
		t.Error("expected error for missing system file")
	}
}
