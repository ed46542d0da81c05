package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveFileCreatesParentDirs(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "sessions", "abc", "labeled-serp.html")

	if err := s.SaveFile(path, []byte("<html></html>")); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}

	got, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(got) != "<html></html>" {
		t.Errorf("ReadFile() = %q, want %q", got, "<html></html>")
	}
}

func TestReadFileMissing(t *testing.T) {
	s := &Storage{}
	if _, err := s.ReadFile(filepath.Join(t.TempDir(), "nope.html")); err == nil {
		t.Error("ReadFile() on a missing file should fail")
	}
}

func TestHasFile(t *testing.T) {
	s := &Storage{}
	dir := t.TempDir()
	path := filepath.Join(dir, "serp.html")

	if s.HasFile(path) {
		t.Error("HasFile() = true before the file exists")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !s.HasFile(path) {
		t.Error("HasFile() = false after the file was written")
	}
}

func TestGetFileStats(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "serp.html")
	if err := os.WriteFile(path, []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() failed: %v", err)
	}
	if stats.SizeBytes != 5 {
		t.Errorf("SizeBytes = %d, want 5", stats.SizeBytes)
	}
	if time.Since(stats.ModTime) > time.Minute {
		t.Errorf("ModTime = %v, not recent", stats.ModTime)
	}

	if _, err := s.GetFileStats(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("GetFileStats() on a missing file should fail")
	}
}
