package script

import (
	"errors"
	"testing"
	"testing/fstest"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/wqhan/jxscript/pkg/fileutil"
)

func newTestLoader(t *testing.T, files map[string]string) *Loader {
	t.Helper()
	mem := fstest.MapFS{}
	for name, content := range files {
		mem[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return NewLoader(fileutil.NewEmbedFS(mem, ""), "script/common")
}

func TestLoaderTwoTierResolution(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"script/map/cave/enter.txt": "FadeIn();",
		"script/common/enter.txt":   "FadeOut();",
		"script/common/shared.txt":  "Say(\"shared\");",
	})
	l.SetMapDir("script/map/cave")

	tests := []struct {
		name     string
		script   string
		wantName string
		wantErr  bool
	}{
		{"map dir wins", "enter.txt", "FadeIn", false},
		{"common fallback", "shared.txt", "Say", false},
		{"case insensitive", "SHARED.TXT", "Say", false},
		{"neither tier", "missing.txt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := l.Load(tt.script)
			if tt.wantErr {
				if !errors.Is(err, ErrScriptNotFound) {
					t.Fatalf("Load(%q) error = %v, want ErrScriptNotFound", tt.script, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(%q): %v", tt.script, err)
			}
			if prog.Len() != 1 || prog.Commands[0].Name != tt.wantName {
				t.Errorf("Load(%q) first command = %+v, want %s", tt.script, prog.Commands, tt.wantName)
			}
		})
	}
}

func TestLoaderCache(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"script/common/a.txt": "FadeIn();",
	})

	first, err := l.Load("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	second, err := l.Load("A.TXT")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second load should return the cached program")
	}
	if l.CacheLen() != 1 {
		t.Errorf("CacheLen = %d, want 1", l.CacheLen())
	}

	l.ClearCache()
	if l.CacheLen() != 0 {
		t.Errorf("CacheLen after ClearCache = %d, want 0", l.CacheLen())
	}
	third, err := l.Load("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if third == first {
		t.Error("load after ClearCache should reparse")
	}
}

func TestLoaderCacheKeyedByMapDir(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"script/map/town/go.txt": "Say(\"town\");",
		"script/map/cave/go.txt": "Say(\"cave\");",
	})

	l.SetMapDir("script/map/town")
	town, err := l.Load("go.txt")
	if err != nil {
		t.Fatal(err)
	}

	l.SetMapDir("script/map/cave")
	cave, err := l.Load("go.txt")
	if err != nil {
		t.Fatal(err)
	}

	if town.Commands[0].Params[0] != "town" || cave.Commands[0].Params[0] != "cave" {
		t.Errorf("map switch served stale program: town=%v cave=%v",
			town.Commands[0].Params, cave.Commands[0].Params)
	}
}

func TestDecodeScriptGBK(t *testing.T) {
	utf8Text := `Say("你好");`
	gbkBytes, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(utf8Text))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"gbk encoded", gbkBytes},
		{"utf8 passthrough", []byte(utf8Text)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeScript(tt.data)
			if err != nil {
				t.Fatalf("decodeScript: %v", err)
			}
			if got != utf8Text {
				t.Errorf("decodeScript = %q, want %q", got, utf8Text)
			}
		})
	}
}
