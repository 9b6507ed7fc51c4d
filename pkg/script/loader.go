package script

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/wqhan/jxscript/pkg/fileutil"
	"github.com/wqhan/jxscript/pkg/logger"
)

// ErrScriptNotFound is returned when a logical script name resolves in
// neither the map directory nor the common directory.
var ErrScriptNotFound = errors.New("script not found")

// Loader resolves logical script names to parsed Programs. Resolution is
// two-tier: the current map's script directory is tried first and the shared
// common directory second, so a map can override a shared script without
// touching it. Parsed programs are cached until ClearCache (title screen).
type Loader struct {
	fsys      fileutil.FileSystem
	commonDir string

	mu     sync.RWMutex
	mapDir string
	cache  map[string]*Program

	log *slog.Logger
}

// NewLoader creates a Loader over fsys. commonDir holds the shared scripts;
// the map directory starts empty and is set per loaded map.
func NewLoader(fsys fileutil.FileSystem, commonDir string) *Loader {
	return &Loader{
		fsys:      fsys,
		commonDir: commonDir,
		cache:     make(map[string]*Program),
		log:       logger.GetLogger(),
	}
}

// SetMapDir switches the first-tier lookup directory, normally when a new
// map is loaded. Cached programs from the previous map stay cached under
// their own keys.
func (l *Loader) SetMapDir(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mapDir = dir
}

// Load resolves and parses the named script, consulting the cache first.
func (l *Loader) Load(name string) (*Program, error) {
	l.mu.RLock()
	mapDir := l.mapDir
	key := cacheKey(mapDir, name)
	if prog, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return prog, nil
	}
	l.mu.RUnlock()

	path, ok := l.resolve(mapDir, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, name)
	}

	data, err := l.fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}

	source, err := decodeScript(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode script %s: %w", path, err)
	}

	prog := Parse(source, name)
	l.log.Debug("script loaded", "name", name, "path", path, "commands", prog.Len())

	l.mu.Lock()
	l.cache[key] = prog
	l.mu.Unlock()

	return prog, nil
}

// resolve finds the first tier the name exists in.
func (l *Loader) resolve(mapDir, name string) (string, bool) {
	if mapDir != "" {
		if path := mapDir + "/" + name; l.fsys.Exists(path) {
			return path, true
		}
	}
	if l.commonDir != "" {
		if path := l.commonDir + "/" + name; l.fsys.Exists(path) {
			return path, true
		}
	}
	return "", false
}

// ClearCache drops every cached program. Called when returning to the title
// screen so edited content is picked up on the next run.
func (l *Loader) ClearCache() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]*Program)
}

// CacheLen returns the number of cached programs.
func (l *Loader) CacheLen() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cache)
}

func cacheKey(mapDir, name string) string {
	return strings.ToLower(mapDir) + "|" + strings.ToLower(name)
}

// decodeScript converts legacy GBK script bytes to UTF-8. Content that is
// already valid UTF-8 passes through untouched.
func decodeScript(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, _, err := transform.Bytes(simplifiedchinese.GBK.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode GBK: %w", err)
	}
	return string(decoded), nil
}
