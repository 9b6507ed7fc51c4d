package fileutil

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestFindFileCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Begin.TXT"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"exact case", "Begin.TXT", false},
		{"lower case", "begin.txt", false},
		{"upper case", "BEGIN.TXT", false},
		{"missing", "other.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindFileCaseInsensitive(dir, tt.filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindFileCaseInsensitive(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if !tt.wantErr && filepath.Base(got) != "Begin.TXT" {
				t.Errorf("resolved to %q, want Begin.TXT", got)
			}
		})
	}
}

func TestRealFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Common.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	fsys := NewRealFS(dir)

	if !fsys.Exists("COMMON.TXT") {
		t.Error("Exists should ignore case")
	}
	if fsys.Exists("nope.txt") {
		t.Error("Exists reported a missing file")
	}

	data, err := fsys.ReadFile("common.TXT")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile = %q, want %q", data, "hello")
	}
}

func TestEmbedFS(t *testing.T) {
	mem := fstest.MapFS{
		"title/script/map/Begin.txt": &fstest.MapFile{Data: []byte("a")},
		"title/script/common.txt":    &fstest.MapFile{Data: []byte("b")},
	}

	fsys := NewEmbedFS(mem, "title")

	if !fsys.Exists("script/map/BEGIN.TXT") {
		t.Error("Exists should ignore case in embedded fs")
	}
	data, err := fsys.ReadFile("script/common.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "b" {
		t.Errorf("ReadFile = %q, want %q", data, "b")
	}
	if fsys.Exists("script/missing.txt") {
		t.Error("Exists reported a missing embedded file")
	}
}
