package scene

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/glmath"
)

// ErrUnknownScene is returned when no scene is registered under a name.
var ErrUnknownScene = errors.New("scene: unknown scene")

// Factory creates a scene from options.
type Factory func(opts ...Option) Scene

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a scene factory under name.
// A factory already registered under the same name is replaced.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = f
}

// Unregister removes a scene from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered scene names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return f, nil
}

// New creates the scene registered under name.
func New(name string, opts ...Option) (Scene, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	glmath.Logger().Debug("scene: created", "scene", name)
	return f(opts...), nil
}
