package network

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for network validation and parsing.
var (
	// ErrEmptyNetwork indicates a description without any node.
	ErrEmptyNetwork = errors.New("network: no nodes")

	// ErrTooManyNodes indicates more nodes than an activation set can hold.
	ErrTooManyNodes = errors.New("network: too many nodes")

	// ErrEmptyID indicates a node or neighbor with an empty identifier.
	ErrEmptyID = errors.New("network: empty node ID")

	// ErrDuplicateNode indicates two nodes sharing one identifier.
	ErrDuplicateNode = errors.New("network: duplicate node")

	// ErrNegativeRate indicates a node with a rate below zero.
	ErrNegativeRate = errors.New("network: negative rate")

	// ErrDanglingNeighbor indicates a neighbor reference to an undefined node.
	ErrDanglingNeighbor = errors.New("network: dangling neighbor")

	// ErrSyntax indicates an input line matching no accepted form.
	ErrSyntax = errors.New("network: syntax error")
)

// ConfigError locates a validation failure in the input.
//
// Line is 1-based and zero when the nodes were not read from text.
// Node is empty when the failure is not tied to one node.
type ConfigError struct {
	Line int
	Node string
	Err  error
}

// Error implements error.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Node != "" {
		fmt.Fprintf(&b, " (node %q)", e.Node)
	}

	return b.String()
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ConfigError) Unwrap() error { return e.Err }
