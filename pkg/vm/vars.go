// Package vm provides the script interpreter: the variable store, parameter
// resolver, command registry, and the cooperatively suspending Executor that
// the frame driver ticks once per frame.
package vm

import (
	"strings"
	"sync"
)

// VarStore is the flat, session-scoped mapping of script variable names to
// integers. Names are case-insensitive and a leading $ is ignored, so
// "$Gold", "gold" and "GOLD" are the same variable. Reading an unset name
// yields zero, never an error.
type VarStore struct {
	mu   sync.RWMutex
	vars map[string]int
}

// NewVarStore creates an empty variable store.
func NewVarStore() *VarStore {
	return &VarStore{vars: make(map[string]int)}
}

// Get returns the variable's current value, zero if unset.
func (s *VarStore) Get(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vars[foldVar(name)]
}

// Set assigns the variable.
func (s *VarStore) Set(name string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[foldVar(name)] = value
}

// Add adds delta to the variable and returns the new value.
func (s *VarStore) Add(name string, delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := foldVar(name)
	s.vars[key] += delta
	return s.vars[key]
}

// Reset drops every variable. Called on new-game and load-game.
func (s *VarStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars = make(map[string]int)
}

// Len returns the number of set variables.
func (s *VarStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vars)
}

func foldVar(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, "$"))
}
