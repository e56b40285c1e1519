package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound   = errors.New("node not found")
	ErrNegativeWeight = errors.New("negative edge weight")
	ErrUnsupported    = errors.New("unsupported operation")
	ErrDisconnected   = errors.New("graph is not connected")
)

// AnalysisError provides structured error information for graph operations.
type AnalysisError struct {
	Op     string // Operation that failed (e.g., "ShortestPath", "Compute")
	Entity string // Entity kind (e.g., "node", "measure", "graph")
	ID     string // Entity identifier (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *AnalysisError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// NodeNotFoundError creates a not-found error for the given node.
func NodeNotFoundError(op, nodeID string) error {
	return &AnalysisError{Op: op, Entity: "node", ID: nodeID, Cause: ErrNodeNotFound}
}

// NegativeWeightError creates an invalid-weight error for a weighted routine.
func NegativeWeightError(op string) error {
	return &AnalysisError{Op: op, Entity: "graph", Cause: ErrNegativeWeight}
}

// UnsupportedError creates an error for an unrecognized algorithm variant.
func UnsupportedError(op, name string) error {
	return &AnalysisError{Op: op, Entity: "variant", ID: name, Cause: ErrUnsupported}
}

// DisconnectedError creates an error for operations that require a single
// connected component.
func DisconnectedError(op string) error {
	return &AnalysisError{Op: op, Entity: "graph", Cause: ErrDisconnected}
}

// IsNotFound returns true if the error is a node not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound)
}
