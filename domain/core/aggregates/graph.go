package aggregates

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"osintgraph/domain/config"
	"osintgraph/domain/core/entities"
	"osintgraph/domain/core/valueobjects"
	"osintgraph/domain/events"
	pkgerrors "osintgraph/pkg/errors"
)

// GraphID represents a unique graph identifier
type GraphID string

// NewGraphID creates a new random GraphID
func NewGraphID() GraphID {
	return GraphID(uuid.New().String())
}

// String returns the string representation
func (id GraphID) String() string {
	return string(id)
}

// Graph is the aggregate root for one investigation canvas.
// It owns the canonical node and edge sequences and guarantees that no edge
// ever references a node that is not in the graph.
type Graph struct {
	id     GraphID
	cfg    *config.DomainConfig
	ids    *valueobjects.IDGenerator
	nodes  []*entities.Node
	edges  []*entities.Edge
	byID   map[valueobjects.NodeID]*entities.Node
	edgeBy map[string]*entities.Edge
	edgeAt map[entities.EdgeKey]*entities.Edge

	createdAt time.Time
	updatedAt time.Time
	version   int
	events    []events.DomainEvent
}

// NewGraph creates an empty graph. A nil generator gets a fresh one starting at node_0.
func NewGraph(cfg *config.DomainConfig, ids *valueobjects.IDGenerator) *Graph {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if ids == nil {
		ids = valueobjects.NewIDGenerator()
	}

	now := time.Now()
	return &Graph{
		id:        NewGraphID(),
		cfg:       cfg,
		ids:       ids,
		nodes:     []*entities.Node{},
		edges:     []*entities.Edge{},
		byID:      make(map[valueobjects.NodeID]*entities.Node),
		edgeBy:    make(map[string]*entities.Edge),
		edgeAt:    make(map[entities.EdgeKey]*entities.Edge),
		createdAt: now,
		updatedAt: now,
		version:   1,
		events:    []events.DomainEvent{},
	}
}

// ID returns the graph's unique identifier
func (g *Graph) ID() GraphID {
	return g.id
}

// IDs returns the generator this graph draws node ids from
func (g *Graph) IDs() *valueobjects.IDGenerator {
	return g.ids
}

// Version is bumped on every mutation
func (g *Graph) Version() int {
	return g.version
}

// UpdatedAt returns when the graph last changed
func (g *Graph) UpdatedAt() time.Time {
	return g.updatedAt
}

// Nodes returns the node sequence in insertion order
func (g *Graph) Nodes() []*entities.Node {
	nodes := make([]*entities.Node, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Edges returns the edge sequence in insertion order
func (g *Graph) Edges() []*entities.Edge {
	edges := make([]*entities.Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// NodeCount returns the number of live nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// AddNode places a node with a caller-supplied id
func (g *Graph) AddNode(id valueobjects.NodeID, nodeType valueobjects.NodeType, position valueobjects.Position, data entities.Data) (*entities.Node, error) {
	if _, exists := g.byID[id]; exists {
		return nil, pkgerrors.NewConflictError(fmt.Sprintf("node %s already exists in graph", id))
	}
	if len(g.nodes) >= g.cfg.MaxNodesPerGraph {
		return nil, pkgerrors.NewLimitExceededError("nodes", g.cfg.MaxNodesPerGraph)
	}

	node, err := entities.NewNode(id, nodeType, position, data)
	if err != nil {
		return nil, err
	}

	g.nodes = append(g.nodes, node)
	g.byID[id] = node
	g.touch()
	g.addEvent(events.NewNodeAdded(g.id.String(), g.version, id, nodeType, position, g.updatedAt))

	return node, nil
}

// NewNode places a node whose id is drawn from the graph's generator,
// prefixed with prefix (pass nodeType.Prefix() for dropped nodes).
func (g *Graph) NewNode(prefix string, nodeType valueobjects.NodeType, position valueobjects.Position, data entities.Data) (*entities.Node, error) {
	if !nodeType.IsValid() {
		return nil, pkgerrors.NewValidationError("unknown node type: " + nodeType.String())
	}
	return g.AddNode(g.ids.NextWithPrefix(prefix), nodeType, position, data)
}

// AddEdge connects source to target through the fixed r1/l1 handles
func (g *Graph) AddEdge(sourceID, targetID valueobjects.NodeID) (*entities.Edge, error) {
	edge, _, err := g.Connect(entities.Connection{Source: sourceID, Target: targetID})
	return edge, err
}

// Connect merges a user-drawn connection into the edge sequence. An identical
// edge (same ends and handles) is left alone: the existing edge is returned
// with added=false.
func (g *Graph) Connect(conn entities.Connection) (edge *entities.Edge, added bool, err error) {
	conn = conn.WithDefaultHandles()
	if err := g.checkEndpoints(conn); err != nil {
		return nil, false, err
	}

	if existing, ok := g.edgeAt[conn.Key()]; ok {
		return existing, false, nil
	}
	if len(g.edges) >= g.cfg.MaxEdgesPerGraph {
		return nil, false, pkgerrors.NewLimitExceededError("edges", g.cfg.MaxEdgesPerGraph)
	}

	edge = g.newEdge(conn)
	g.edges = append(g.edges, edge)
	g.indexEdge(edge)
	g.touch()
	g.addEvent(events.NewEdgeAdded(g.id.String(), g.version, edge.ID, edge.Source, edge.Target, g.updatedAt))

	return edge, true, nil
}

// UpdateEdge reconnects an existing edge to new ends. The old edge is replaced
// in place so the sequence order is kept.
func (g *Graph) UpdateEdge(oldEdgeID string, conn entities.Connection) (*entities.Edge, error) {
	old, ok := g.edgeBy[oldEdgeID]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("edge " + oldEdgeID)
	}
	conn = conn.WithDefaultHandles()
	if err := g.checkEndpoints(conn); err != nil {
		return nil, err
	}
	if old.Matches(conn) {
		return old, nil
	}
	if _, taken := g.edgeAt[conn.Key()]; taken {
		return nil, pkgerrors.NewConflictError("edge already exists")
	}

	g.unindexEdge(old)
	edge := g.newEdge(conn)
	for i, e := range g.edges {
		if e == old {
			g.edges[i] = edge
			break
		}
	}
	g.indexEdge(edge)
	g.touch()
	g.addEvent(events.NewEdgeRemoved(g.id.String(), g.version, oldEdgeID, g.updatedAt))
	g.addEvent(events.NewEdgeAdded(g.id.String(), g.version, edge.ID, edge.Source, edge.Target, g.updatedAt))

	return edge, nil
}

// RemoveEdge deletes a single edge. Removing an unknown edge is a no-op.
func (g *Graph) RemoveEdge(edgeID string) bool {
	edge, ok := g.edgeBy[edgeID]
	if !ok {
		return false
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e != edge {
			kept = append(kept, e)
		}
	}
	clearTail(g.edges, len(kept))
	g.edges = kept
	g.unindexEdge(edge)
	g.touch()
	g.addEvent(events.NewEdgeRemoved(g.id.String(), g.version, edgeID, g.updatedAt))

	return true
}

// DeleteNode removes a node together with every edge that references it.
// Deleting a node that is not present is a no-op and returns false.
func (g *Graph) DeleteNode(nodeID valueobjects.NodeID) bool {
	if _, exists := g.byID[nodeID]; !exists {
		return false
	}

	var removed []string
	keptEdges := g.edges[:0]
	for _, e := range g.edges {
		if e.Touches(nodeID) {
			removed = append(removed, e.ID)
			g.unindexEdge(e)
			continue
		}
		keptEdges = append(keptEdges, e)
	}
	clearTail(g.edges, len(keptEdges))
	g.edges = keptEdges

	keptNodes := g.nodes[:0]
	for _, n := range g.nodes {
		if !n.ID().Equals(nodeID) {
			keptNodes = append(keptNodes, n)
		}
	}
	clearTail(g.nodes, len(keptNodes))
	g.nodes = keptNodes
	delete(g.byID, nodeID)

	g.touch()
	g.addEvent(events.NewNodeDeleted(g.id.String(), g.version, nodeID, removed, g.updatedAt))

	return true
}

// MoveNode drags a node to a new position
func (g *Graph) MoveNode(nodeID valueobjects.NodeID, position valueobjects.Position) (*entities.Node, error) {
	node, exists := g.byID[nodeID]
	if !exists {
		return nil, pkgerrors.NewUnknownNodeReferenceError(nodeID.String())
	}

	old := node.Position()
	if node.MoveTo(position) {
		g.touch()
		g.addEvent(events.NewNodeMoved(g.id.String(), g.version, nodeID, old, position, g.updatedAt))
	}
	return node, nil
}

// GetNode retrieves a node by ID
func (g *Graph) GetNode(nodeID valueobjects.NodeID) (*entities.Node, error) {
	node, exists := g.byID[nodeID]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("node " + nodeID.String())
	}
	return node, nil
}

// HasNode checks if a node exists in the graph without error
func (g *Graph) HasNode(nodeID valueobjects.NodeID) bool {
	_, exists := g.byID[nodeID]
	return exists
}

// EdgesOf returns the edges that reference the node, in sequence order
func (g *Graph) EdgesOf(nodeID valueobjects.NodeID) []*entities.Edge {
	var out []*entities.Edge
	for _, e := range g.edges {
		if e.Touches(nodeID) {
			out = append(out, e)
		}
	}
	return out
}

// Validate ensures graph invariants
func (g *Graph) Validate() error {
	for _, edge := range g.edges {
		if !g.HasNode(edge.Source) {
			return pkgerrors.NewUnknownNodeReferenceError(edge.Source.String())
		}
		if !g.HasNode(edge.Target) {
			return pkgerrors.NewUnknownNodeReferenceError(edge.Target.String())
		}
	}

	if len(g.nodes) != len(g.byID) {
		return pkgerrors.NewInternalError("node index out of sync")
	}
	if len(g.edges) != len(g.edgeBy) || len(g.edges) != len(g.edgeAt) {
		return pkgerrors.NewInternalError("edge index out of sync")
	}

	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (g *Graph) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(g.events))
	copy(out, g.events)
	return out
}

// MarkEventsAsCommitted clears the uncommitted events
func (g *Graph) MarkEventsAsCommitted() {
	g.events = []events.DomainEvent{}
}

// Private helper methods

func (g *Graph) checkEndpoints(conn entities.Connection) error {
	var missing []string
	if !g.HasNode(conn.Source) {
		missing = append(missing, conn.Source.String())
	}
	if !g.HasNode(conn.Target) {
		missing = append(missing, conn.Target.String())
	}
	if len(missing) > 0 {
		return pkgerrors.NewUnknownNodeReferenceError(missing...)
	}
	if !g.cfg.AllowSelfConnections && conn.Source.Equals(conn.Target) {
		return pkgerrors.NewValidationError("cannot connect node to itself")
	}
	return nil
}

// newEdge builds an edge for conn whose id is unique in the graph. A rendered
// id already held by a different edge gets a numeric suffix.
func (g *Graph) newEdge(conn entities.Connection) *entities.Edge {
	edge := entities.NewEdge(conn)
	base := edge.ID
	for n := 1; ; n++ {
		if _, taken := g.edgeBy[edge.ID]; !taken {
			return edge
		}
		edge.ID = fmt.Sprintf("%s-%d", base, n)
	}
}

func (g *Graph) indexEdge(e *entities.Edge) {
	g.edgeBy[e.ID] = e
	g.edgeAt[e.Key()] = e
}

func (g *Graph) unindexEdge(e *entities.Edge) {
	delete(g.edgeBy, e.ID)
	delete(g.edgeAt, e.Key())
}

func (g *Graph) touch() {
	g.updatedAt = time.Now()
	g.version++
}

func (g *Graph) addEvent(event events.DomainEvent) {
	g.events = append(g.events, event)
}

// clearTail nils out slots past n so filtered-out pointers can be collected
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
