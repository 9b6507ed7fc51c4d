package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindSoundFont(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"default preferred", []string{"other.sf2", DefaultSoundFontName}, DefaultSoundFontName},
		{"any sf2", []string{"town.sf2"}, "town.sf2"},
		{"case-insensitive extension", []string{"Town.SF2"}, "Town.SF2"},
		{"none", []string{"readme.txt"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			if got := findSoundFont(dir); got != tt.want {
				t.Errorf("findSoundFont = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindSoundFontMissingDir(t *testing.T) {
	if got := findSoundFont(filepath.Join(t.TempDir(), "nope")); got != "" {
		t.Errorf("findSoundFont on missing dir = %q, want empty", got)
	}
}
