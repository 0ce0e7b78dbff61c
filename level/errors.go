package level

import "errors"

// Sentinel errors for level and catalog validation.
var (
	// ErrLevelNotFound indicates a catalog lookup for an unknown level ID.
	ErrLevelNotFound = errors.New("level: level not found")

	// ErrBadLevelID indicates a non-positive level ID.
	ErrBadLevelID = errors.New("level: level ID must be positive")

	// ErrBadDifficulty indicates a difficulty outside [MinDifficulty, MaxDifficulty].
	ErrBadDifficulty = errors.New("level: difficulty out of range")

	// ErrBadGridSize indicates a non-positive grid extent.
	ErrBadGridSize = errors.New("level: grid size must be positive")

	// ErrBadNodeID indicates a non-positive node ID.
	ErrBadNodeID = errors.New("level: node ID must be positive")

	// ErrDuplicateNode indicates the same node ID declared twice.
	ErrDuplicateNode = errors.New("level: duplicate node ID")

	// ErrDanglingEdge indicates an edge referencing a node that does not exist.
	ErrDanglingEdge = errors.New("level: edge references unknown node")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("level: self-loop not allowed")

	// ErrParallelEdge indicates two edges with the same canonical key.
	ErrParallelEdge = errors.New("level: parallel edge not allowed")

	// ErrDuplicateLevel indicates a catalog holding the same level ID twice.
	ErrDuplicateLevel = errors.New("level: duplicate level ID in catalog")
)
