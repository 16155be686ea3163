package events

import (
	"time"

	"osintgraph/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// Event types raised by the canvas graph
const (
	TypeNodeAdded   = "graph.node_added"
	TypeNodeMoved   = "graph.node_moved"
	TypeNodeDeleted = "graph.node_deleted"
	TypeEdgeAdded   = "graph.edge_added"
	TypeEdgeRemoved = "graph.edge_removed"
)

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

func newBase(graphID, eventType string, version int, at time.Time) BaseEvent {
	return BaseEvent{
		AggregateID: graphID,
		EventType:   eventType,
		Timestamp:   at,
		Version:     version,
	}
}

// NodeAdded is raised when a node is placed on the canvas
type NodeAdded struct {
	BaseEvent
	NodeID   valueobjects.NodeID   `json:"node_id"`
	NodeType valueobjects.NodeType `json:"node_type"`
	Position valueobjects.Position `json:"position"`
}

// NewNodeAdded creates a NodeAdded event
func NewNodeAdded(graphID string, version int, nodeID valueobjects.NodeID, nodeType valueobjects.NodeType, pos valueobjects.Position, at time.Time) NodeAdded {
	return NodeAdded{
		BaseEvent: newBase(graphID, TypeNodeAdded, version, at),
		NodeID:    nodeID,
		NodeType:  nodeType,
		Position:  pos,
	}
}

// NodeMoved is raised when a node is dragged to a new position
type NodeMoved struct {
	BaseEvent
	NodeID      valueobjects.NodeID   `json:"node_id"`
	OldPosition valueobjects.Position `json:"old_position"`
	NewPosition valueobjects.Position `json:"new_position"`
}

// NewNodeMoved creates a NodeMoved event
func NewNodeMoved(graphID string, version int, nodeID valueobjects.NodeID, oldPos, newPos valueobjects.Position, at time.Time) NodeMoved {
	return NodeMoved{
		BaseEvent:   newBase(graphID, TypeNodeMoved, version, at),
		NodeID:      nodeID,
		OldPosition: oldPos,
		NewPosition: newPos,
	}
}

// NodeDeleted is raised when a node and its incident edges are removed
type NodeDeleted struct {
	BaseEvent
	NodeID       valueobjects.NodeID `json:"node_id"`
	RemovedEdges []string            `json:"removed_edges"`
}

// NewNodeDeleted creates a NodeDeleted event
func NewNodeDeleted(graphID string, version int, nodeID valueobjects.NodeID, removedEdges []string, at time.Time) NodeDeleted {
	return NodeDeleted{
		BaseEvent:    newBase(graphID, TypeNodeDeleted, version, at),
		NodeID:       nodeID,
		RemovedEdges: removedEdges,
	}
}

// EdgeAdded is raised when two nodes are connected
type EdgeAdded struct {
	BaseEvent
	EdgeID   string              `json:"edge_id"`
	SourceID valueobjects.NodeID `json:"source_id"`
	TargetID valueobjects.NodeID `json:"target_id"`
}

// NewEdgeAdded creates an EdgeAdded event
func NewEdgeAdded(graphID string, version int, edgeID string, source, target valueobjects.NodeID, at time.Time) EdgeAdded {
	return EdgeAdded{
		BaseEvent: newBase(graphID, TypeEdgeAdded, version, at),
		EdgeID:    edgeID,
		SourceID:  source,
		TargetID:  target,
	}
}

// EdgeRemoved is raised when a single edge is removed on its own
type EdgeRemoved struct {
	BaseEvent
	EdgeID string `json:"edge_id"`
}

// NewEdgeRemoved creates an EdgeRemoved event
func NewEdgeRemoved(graphID string, version int, edgeID string, at time.Time) EdgeRemoved {
	return EdgeRemoved{
		BaseEvent: newBase(graphID, TypeEdgeRemoved, version, at),
		EdgeID:    edgeID,
	}
}

// Batch groups the events a single committed mutation produced on one canvas
type Batch struct {
	SessionID string
	Events    []DomainEvent
}
