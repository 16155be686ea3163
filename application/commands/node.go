package commands

import (
	"osintgraph/domain/core/entities"
	"osintgraph/pkg/utils"
)

// AddNodeCommand inserts a node at a canvas position. An empty NodeID lets the
// canvas generator pick one with the type's prefix.
type AddNodeCommand struct {
	SessionID string        `json:"session_id" validate:"required"`
	NodeID    string        `json:"id" validate:"max=128"`
	Type      string        `json:"type" validate:"required"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Data      entities.Data `json:"data"`
}

// Validate validates the command
func (c AddNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DeleteNodeCommand removes a node and every edge touching it
type DeleteNodeCommand struct {
	SessionID string `json:"session_id" validate:"required"`
	NodeID    string `json:"node_id" validate:"required"`
}

// Validate validates the command
func (c DeleteNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// MoveNodeCommand records a node dragged to a new position
type MoveNodeCommand struct {
	SessionID string  `json:"session_id" validate:"required"`
	NodeID    string  `json:"node_id" validate:"required"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// Validate validates the command
func (c MoveNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}
