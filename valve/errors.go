package valve

import "errors"

// Sentinel errors for problem construction and solving.
var (
	// ErrNilNetwork is returned when NewProblem receives a nil network.
	ErrNilNetwork = errors.New("valve: network is nil")

	// ErrUnknownStart indicates that the requested start node does not exist.
	ErrUnknownStart = errors.New("valve: unknown start node")

	// ErrBadHorizon indicates a negative time horizon.
	ErrBadHorizon = errors.New("valve: horizon must be non-negative")

	// ErrBadAgents indicates an agent count outside [1, MaxAgents].
	ErrBadAgents = errors.New("valve: agent count out of range")

	// ErrNilProblem is returned when Solve receives a nil problem.
	ErrNilProblem = errors.New("valve: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("valve: invalid option supplied")
)
