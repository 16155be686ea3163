// Package commands holds the write side of the canvas API. Every command is
// scoped to one open session and validated with struct tags before dispatch.
package commands

import "osintgraph/pkg/utils"

// OpenSessionCommand opens a blank canvas for an investigation case
type OpenSessionCommand struct {
	Case string `json:"case" validate:"required,max=200"`
}

// Validate validates the command
func (c OpenSessionCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// CloseSessionCommand discards a canvas and its graph
type CloseSessionCommand struct {
	SessionID string `json:"session_id" validate:"required"`
}

// Validate validates the command
func (c CloseSessionCommand) Validate() error {
	return utils.ValidateStruct(c)
}
