package commands

import (
	"osintgraph/domain/core/valueobjects"
	"osintgraph/pkg/utils"
)

// DropNodeCommand is a palette item released over the canvas. Payload is not
// tag-validated: an empty or unknown payload is the INVALID_DROP_PAYLOAD case.
type DropNodeCommand struct {
	SessionID string                `json:"session_id" validate:"required"`
	Payload   string                `json:"payload"`
	ClientX   float64               `json:"clientX"`
	ClientY   float64               `json:"clientY"`
	Bounds    valueobjects.Rect     `json:"bounds"`
	Viewport  valueobjects.Viewport `json:"viewport"`
}

// Validate validates the command
func (c DropNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// InvokeActionCommand is a context menu click
type InvokeActionCommand struct {
	SessionID    string            `json:"session_id" validate:"required"`
	NodeID       string            `json:"node_id" validate:"required"`
	Action       string            `json:"action" validate:"required"`
	DisplayedURL string            `json:"displayedUrl"`
	Rect         valueobjects.Rect `json:"rect"`
	ScrollWidth  float64           `json:"scrollWidth"`
}

// Validate validates the command
func (c InvokeActionCommand) Validate() error {
	return utils.ValidateStruct(c)
}
