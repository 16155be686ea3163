package extensions

import (
	"context"
	"fmt"
	"sync"
)

// HookPoint represents a point in the canvas lifecycle where hooks can be registered
type HookPoint string

const (
	// Session hooks
	HookSessionOpened HookPoint = "session_opened"
	HookSessionClosed HookPoint = "session_closed"

	// Graph hooks, called with the events.Batch of each committed mutation
	HookAfterGraphMutation HookPoint = "after_graph_mutation"

	// Context menu hooks, called with the ActionResult of each invoked action
	HookAfterNodeAction HookPoint = "after_node_action"
)

// Hook represents a function that can be executed at a hook point
type Hook func(ctx context.Context, data interface{}) error

// HookManager manages hooks for extension points
type HookManager struct {
	hooks map[HookPoint][]Hook
	mu    sync.RWMutex
}

// NewHookManager creates a new hook manager
func NewHookManager() *HookManager {
	return &HookManager{
		hooks: make(map[HookPoint][]Hook),
	}
}

// Register registers a hook for a specific hook point
func (m *HookManager) Register(point HookPoint, hook Hook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hooks[point] = append(m.hooks[point], hook)
}

// Execute runs every hook for the point in registration order. All hooks run
// even if one fails; the first error is returned.
func (m *HookManager) Execute(ctx context.Context, point HookPoint, data interface{}) error {
	m.mu.RLock()
	hooks := m.hooks[point]
	m.mu.RUnlock()

	var first error
	for i, hook := range hooks {
		if err := hook(ctx, data); err != nil && first == nil {
			first = fmt.Errorf("hook %d at %s failed: %w", i, point, err)
		}
	}
	return first
}

// Count returns how many hooks are registered at a point
func (m *HookManager) Count(point HookPoint) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.hooks[point])
}

// Clear removes all hooks for a specific hook point
func (m *HookManager) Clear(point HookPoint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.hooks, point)
}
