// Package session keeps the open investigation canvases in memory. A canvas
// lives from Open until Close; nothing is persisted.
package session

import (
	"sync"
	"time"

	"osintgraph/application/interaction"
	"osintgraph/domain/core/aggregates"
	"osintgraph/domain/events"
)

// Session is one open canvas bound to an active case
type Session struct {
	id        string
	caseName  string
	createdAt time.Time

	// mu serialises every gesture on this canvas
	mu         sync.Mutex
	controller *interaction.Controller
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Case returns the active case name shown in the breadcrumb
func (s *Session) Case() string {
	return s.caseName
}

// CreatedAt returns when the canvas was opened
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Mutate runs fn with exclusive access to the canvas and returns the domain
// events fn produced. Events are drained even when fn fails, so a partial
// mutation never leaks into the next call's events.
func (s *Session) Mutate(fn func(c *interaction.Controller) error) ([]events.DomainEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.controller)

	graph := s.controller.Graph()
	evts := graph.GetUncommittedEvents()
	graph.MarkEventsAsCommitted()

	return evts, err
}

// Read runs fn with exclusive access to the canvas graph
func (s *Session) Read(fn func(g *aggregates.Graph)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.controller.Graph())
}

// Menu returns the context menu for a node id
func (s *Session) Menu(nodeID string) interaction.Menu {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.controller.ContextMenu(nodeID)
}
