// Package registry provides a global registry of rendering backends.
// Backends register themselves in init() functions, allowing the CLI
// to list and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Options carries the per-game settings every backend accepts.
type Options struct {
	Logger        *log.Logger
	ScreenshotDir string // empty disables screenshots
	EngineOptions []tetris.Option
}

// Runner plays one game and blocks until it ends, either because the player
// quit or because ctx was cancelled.
type Runner func(ctx context.Context, cfg core.RuntimeConfig, opts Options) error

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

var (
	runners      = make(map[string]Runner)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend to the registry.
// Typically called from a backend package's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, description string, r Runner) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := runners[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	runners[name] = r
	descriptions[name] = description
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(runners))
	for name := range runners {
		result = append(result, BackendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the runner registered under name.
// Returns an error if the name is not registered.
func Get(name string) (Runner, error) {
	mu.RLock()
	defer mu.RUnlock()

	r, ok := runners[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return r, nil
}
