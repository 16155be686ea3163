package commands

import (
	"osintgraph/domain/core/entities"
	"osintgraph/domain/core/valueobjects"
	"osintgraph/pkg/utils"
)

// AddEdgeCommand links two existing nodes through the default handles
type AddEdgeCommand struct {
	SessionID string `json:"session_id" validate:"required"`
	Source    string `json:"source" validate:"required"`
	Target    string `json:"target" validate:"required"`
}

// Validate validates the command
func (c AddEdgeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// ConnectCommand merges a connection drawn by the user. Missing handles fall
// back to the default source and target handles.
type ConnectCommand struct {
	SessionID    string `json:"session_id" validate:"required"`
	Source       string `json:"source" validate:"required"`
	Target       string `json:"target" validate:"required"`
	SourceHandle string `json:"sourceHandle"`
	TargetHandle string `json:"targetHandle"`
}

// Validate validates the command
func (c ConnectCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// Connection converts the command into a domain connection
func (c ConnectCommand) Connection() (entities.Connection, error) {
	return toConnection(c.Source, c.Target, c.SourceHandle, c.TargetHandle)
}

// ConnectResult reports the merged edge and whether it was new
type ConnectResult struct {
	Edge  *entities.Edge `json:"edge"`
	Added bool           `json:"added"`
}

// UpdateEdgeCommand reattaches an existing edge to new endpoints
type UpdateEdgeCommand struct {
	SessionID    string `json:"session_id" validate:"required"`
	EdgeID       string `json:"edge_id" validate:"required"`
	Source       string `json:"source" validate:"required"`
	Target       string `json:"target" validate:"required"`
	SourceHandle string `json:"sourceHandle"`
	TargetHandle string `json:"targetHandle"`
}

// Validate validates the command
func (c UpdateEdgeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// Connection converts the command into a domain connection
func (c UpdateEdgeCommand) Connection() (entities.Connection, error) {
	return toConnection(c.Source, c.Target, c.SourceHandle, c.TargetHandle)
}

// RemoveEdgeCommand removes a single edge by id
type RemoveEdgeCommand struct {
	SessionID string `json:"session_id" validate:"required"`
	EdgeID    string `json:"edge_id" validate:"required"`
}

// Validate validates the command
func (c RemoveEdgeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

func toConnection(source, target, sourceHandle, targetHandle string) (entities.Connection, error) {
	src, err := valueobjects.NewNodeID(source)
	if err != nil {
		return entities.Connection{}, err
	}
	dst, err := valueobjects.NewNodeID(target)
	if err != nil {
		return entities.Connection{}, err
	}
	return entities.Connection{
		Source:       src,
		Target:       dst,
		SourceHandle: sourceHandle,
		TargetHandle: targetHandle,
	}.WithDefaultHandles(), nil
}
