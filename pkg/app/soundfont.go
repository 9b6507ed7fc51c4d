package app

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultSoundFontName is preferred when the data directory holds several
// SoundFonts.
const DefaultSoundFontName = "GeneralUser-GS.sf2"

// findSoundFont looks for a .sf2 file in the data directory: the default
// name first, then any other SoundFont. Returns a path relative to the data
// directory, or "" when none exists.
func findSoundFont(baseDir string) string {
	if baseDir == "" {
		baseDir = "."
	}

	if _, err := os.Stat(filepath.Join(baseDir, DefaultSoundFontName)); err == nil {
		return DefaultSoundFontName
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".sf2") {
			return entry.Name()
		}
	}
	return ""
}
