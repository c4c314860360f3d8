package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestReportNil(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Fatalf("Close() on nil report error = %v", err)
	}
	if n := r.Name(); n != "" {
		t.Fatalf("Name() on nil report = %q, want empty", n)
	}
	// must not panic
	r.Store("a", "b")
	r.StoreData("a", []byte("b"))
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Fatalf("StoreCopy() on nil report error = %v", err)
	}
}

func TestReport(t *testing.T) {
	tmpDir := t.TempDir()

	srcName := filepath.Join(tmpDir, "input.css")
	if err := os.WriteFile(srcName, []byte(".a { color: red }\n"), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if rpt.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", rpt.Name(), conf.Destination)
	}

	rpt.StoreData("css/light.css", []byte("body { color: black }\n"))
	rpt.Store("input.css", srcName)
	if err := rpt.StoreCopy("copy.css", srcName); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	arc, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("Report is not a readable zip archive: %v", err)
	}
	defer arc.Close()

	want := map[string]bool{
		"MANIFEST":      false,
		"css/light.css": false,
		"input.css":     false,
		"copy.css":      false,
	}
	for _, f := range arc.File {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Archive is missing entry %q", name)
		}
	}

	for _, f := range arc.File {
		if f.Name != "css/light.css" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open archive entry: %v", err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read archive entry: %v", err)
		}
		if string(data) != "body { color: black }\n" {
			t.Errorf("Stored data = %q, want %q", data, "body { color: black }\n")
		}
	}
}

func TestReportDuplicateStorePanics(t *testing.T) {
	tmpDir := t.TempDir()

	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer rpt.Close()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on conflicting Store()")
		}
	}()
	rpt.Store("same", "one")
	rpt.Store("same", "two")
}
