//go:build profile

package profiler

import (
	"log"
	"sort"
	"sync"
	"time"
)

// Scope is the accumulated timing of one named scope.
type Scope struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

var (
	mu     sync.Mutex
	scopes = map[string]*Scope{}
)

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	begin := time.Now()
	return func() {
		d := time.Since(begin)
		mu.Lock()
		defer mu.Unlock()
		s, ok := scopes[name]
		if !ok {
			s = &Scope{Name: name}
			scopes[name] = s
		}
		s.Count++
		s.Total += d
		if d > s.Max {
			s.Max = d
		}
	}
}

// Snapshot returns all scopes sorted by name.
func Snapshot() []Scope {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Scope, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset drops every recorded scope.
func Reset() {
	mu.Lock()
	scopes = map[string]*Scope{}
	mu.Unlock()
}

// Report logs one line per scope.
func Report() {
	for _, s := range Snapshot() {
		log.Printf("profile: %-28s n=%d total=%v max=%v", s.Name, s.Count, s.Total, s.Max)
	}
}
