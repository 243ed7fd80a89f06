// Package safety tracks engine-owned allocations so construction and teardown
// paths can be checked for leaks and double releases.
package safety

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrAllocation is returned when an allocation request cannot be satisfied.
var ErrAllocation = errors.New("allocation failed")

// Allocator hands out and takes back named engine objects.
type Allocator interface {
	Alloc(name string) error
	Free(name string)
}

// Tracker is an Allocator that counts live objects by name.
// Releasing something that is not live is logged with the caller location
// instead of panicking.
type Tracker struct {
	mu     sync.Mutex
	live   map[string]int
	allocs int
	frees  int
	bad    int
	logger *log.Logger

	// FailOn makes Alloc fail for matching names. Nil means never fail.
	FailOn func(name string) bool
}

// NewTracker creates a tracker logging to logger (or the default logger if nil).
func NewTracker(logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default()
	}
	return &Tracker{
		live:   make(map[string]int),
		logger: logger,
	}
}

// Alloc records a new live object.
func (t *Tracker) Alloc(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.FailOn != nil && t.FailOn(name) {
		t.logger.Error("failed to allocate", "object", name, "caller", caller())
		return fmt.Errorf("%s: %w", name, ErrAllocation)
	}
	t.live[name]++
	t.allocs++
	return nil
}

// Free releases a live object. Freeing an object that is not live is
// recorded and logged.
func (t *Tracker) Free(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.live[name] == 0 {
		t.bad++
		t.logger.Error("tried to free object that is not allocated", "object", name, "caller", caller())
		return
	}
	t.live[name]--
	if t.live[name] == 0 {
		delete(t.live, name)
	}
	t.frees++
}

// Live returns the number of objects not yet freed.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, c := range t.live {
		n += c
	}
	return n
}

// LiveNames returns the sorted names of objects not yet freed.
func (t *Tracker) LiveNames() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.live))
	for name := range t.live {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats returns total allocations, frees and invalid frees.
func (t *Tracker) Stats() (allocs, frees, invalid int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs, t.frees, t.bad
}

// caller reports the first frame outside this package.
func caller() string {
	for skip := 2; skip < 8; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if filepath.Base(filepath.Dir(file)) != "safety" {
			return fmt.Sprintf("%s:%d", filepath.Base(file), line)
		}
	}
	return "unknown"
}
