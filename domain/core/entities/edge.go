package entities

import (
	"fmt"
	"time"

	"osintgraph/domain/core/valueobjects"
)

// Connection is an edge request drawn between two node ports
type Connection struct {
	Source       valueobjects.NodeID `json:"source"`
	Target       valueobjects.NodeID `json:"target"`
	SourceHandle string              `json:"sourceHandle,omitempty"`
	TargetHandle string              `json:"targetHandle,omitempty"`
}

// WithDefaultHandles fills empty handles with the fixed r1/l1 ports
func (c Connection) WithDefaultHandles() Connection {
	if c.SourceHandle == "" {
		c.SourceHandle = valueobjects.SourceHandle
	}
	if c.TargetHandle == "" {
		c.TargetHandle = valueobjects.TargetHandle
	}
	return c
}

// EdgeKey identifies an edge by the ports it joins. Two connections are the
// same edge exactly when their keys are equal.
type EdgeKey struct {
	Source       valueobjects.NodeID
	Target       valueobjects.NodeID
	SourceHandle string
	TargetHandle string
}

// Key returns the connection's identity with default handles applied
func (c Connection) Key() EdgeKey {
	c = c.WithDefaultHandles()
	return EdgeKey{
		Source:       c.Source,
		Target:       c.Target,
		SourceHandle: c.SourceHandle,
		TargetHandle: c.TargetHandle,
	}
}

// Edge is a directed connection between two nodes' ports
type Edge struct {
	ID           string              `json:"id"`
	Source       valueobjects.NodeID `json:"source"`
	Target       valueobjects.NodeID `json:"target"`
	SourceHandle string              `json:"sourceHandle"`
	TargetHandle string              `json:"targetHandle"`
	CreatedAt    time.Time           `json:"-"`
}

// NewEdge builds an edge from a connection; empty handles get the defaults
func NewEdge(conn Connection) *Edge {
	conn = conn.WithDefaultHandles()
	return &Edge{
		ID:           EdgeID(conn),
		Source:       conn.Source,
		Target:       conn.Target,
		SourceHandle: conn.SourceHandle,
		TargetHandle: conn.TargetHandle,
		CreatedAt:    time.Now(),
	}
}

// EdgeID derives the id the canvas renderer uses for a connection. Node ids are
// free text, so two connections can render the same id; the graph keeps edges
// apart by EdgeKey and disambiguates the id.
func EdgeID(conn Connection) string {
	return fmt.Sprintf("reactflow__edge-%s%s-%s%s",
		conn.Source.String(), conn.SourceHandle, conn.Target.String(), conn.TargetHandle)
}

// Key returns the ports the edge joins
func (e *Edge) Key() EdgeKey {
	return EdgeKey{
		Source:       e.Source,
		Target:       e.Target,
		SourceHandle: e.SourceHandle,
		TargetHandle: e.TargetHandle,
	}
}

// Matches reports whether the edge joins exactly the same ports as conn
func (e *Edge) Matches(conn Connection) bool {
	return e.Key() == conn.Key()
}

// Touches reports whether the node is either end of the edge
func (e *Edge) Touches(nodeID valueobjects.NodeID) bool {
	return e.Source.Equals(nodeID) || e.Target.Equals(nodeID)
}
