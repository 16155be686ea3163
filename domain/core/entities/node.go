package entities

import (
	"encoding/json"
	"time"

	"osintgraph/domain/core/valueobjects"
	pkgerrors "osintgraph/pkg/errors"
)

// Data is the type-dependent payload of a node, e.g. {"label": {"url": "..."}}
type Data map[string]interface{}

// Node is one OSINT entity placed on the canvas
type Node struct {
	id        valueobjects.NodeID
	nodeType  valueobjects.NodeType
	position  valueobjects.Position
	data      Data
	createdAt time.Time
	updatedAt time.Time
}

// NewNode creates a node after checking its id and type
func NewNode(id valueobjects.NodeID, nodeType valueobjects.NodeType, position valueobjects.Position, data Data) (*Node, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("node ID cannot be empty")
	}
	if !nodeType.IsValid() {
		return nil, pkgerrors.NewValidationError("unknown node type: " + nodeType.String())
	}

	now := time.Now()
	return &Node{
		id:        id,
		nodeType:  nodeType,
		position:  position,
		data:      copyData(data),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ID returns the node's unique identifier
func (n *Node) ID() valueobjects.NodeID {
	return n.id
}

// Type returns the node's entity type
func (n *Node) Type() valueobjects.NodeType {
	return n.nodeType
}

// Position returns the node's position in canvas space
func (n *Node) Position() valueobjects.Position {
	return n.position
}

// Data returns a copy of the node payload
func (n *Node) Data() Data {
	return copyData(n.data)
}

// Label returns data["label"], which is a string for dropped nodes and a
// map for derived website nodes.
func (n *Node) Label() interface{} {
	return n.data["label"]
}

// URL returns data.label.url for website nodes, or "" when absent
func (n *Node) URL() string {
	label, ok := n.data["label"].(map[string]interface{})
	if !ok {
		return ""
	}
	url, _ := label["url"].(string)
	return url
}

// CreatedAt returns when the node was placed
func (n *Node) CreatedAt() time.Time {
	return n.createdAt
}

// UpdatedAt returns when the node last changed
func (n *Node) UpdatedAt() time.Time {
	return n.updatedAt
}

// MoveTo moves the node to a new position, reporting whether it changed
func (n *Node) MoveTo(position valueobjects.Position) bool {
	if position.Equals(n.position) {
		return false
	}
	n.position = position
	n.updatedAt = time.Now()
	return true
}

// Clone returns a detached copy that later moves on the canvas will not touch
func (n *Node) Clone() *Node {
	c := *n
	c.data = copyData(n.data)
	return &c
}

type nodeJSON struct {
	ID       valueobjects.NodeID   `json:"id"`
	Type     valueobjects.NodeType `json:"type"`
	Position valueobjects.Position `json:"position"`
	Data     Data                  `json:"data"`
}

// MarshalJSON renders the node in the shape the canvas renderer consumes
func (n *Node) MarshalJSON() ([]byte, error) {
	data := n.data
	if data == nil {
		data = Data{}
	}
	return json.Marshal(nodeJSON{
		ID:       n.id,
		Type:     n.nodeType,
		Position: n.position,
		Data:     data,
	})
}

// copyData makes a shallow copy so callers cannot mutate stored payloads.
// Nested label maps are copied one level deep.
func copyData(data Data) Data {
	if data == nil {
		return nil
	}
	out := make(Data, len(data))
	for k, v := range data {
		if m, ok := v.(map[string]interface{}); ok {
			inner := make(map[string]interface{}, len(m))
			for ik, iv := range m {
				inner[ik] = iv
			}
			v = inner
		}
		out[k] = v
	}
	return out
}
