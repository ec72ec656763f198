// Package brokerage types: Role enumeration, per-ego Profile, the Graph
// consumer interface, and sentinel errors.
package brokerage

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by the brokerage census.
var (
	// ErrNilGraph indicates that a nil Graph was passed to a public entry point.
	ErrNilGraph = errors.New("brokerage: graph is nil")

	// ErrBadGroups indicates a group assignment that does not cover the
	// graph's vertex set (wrong length, or missing vertex keys).
	ErrBadGroups = errors.New("brokerage: malformed group assignment")
)

// Graph is the read-only adjacency surface the census consumes.
// *core.Graph satisfies it.
type Graph interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// Vertices returns all vertex IDs sorted ascending.
	Vertices() []int64

	// HasVertex reports membership of id in the vertex set.
	HasVertex(id int64) bool

	// OutNeighborIDs returns the targets of id's outgoing edges, sorted ascending.
	OutNeighborIDs(id int64) ([]int64, error)

	// InNeighborIDs returns the sources of id's incoming edges, sorted ascending.
	InNeighborIDs(id int64) ([]int64, error)
}

// Role is the brokerage position of an ego between one in-neighbor and one
// out-neighbor, determined by the three group labels alone.
type Role uint8

const (
	// RoleCoordinator — all three labels equal.
	RoleCoordinator Role = iota

	// RoleGatekeeper — ego shares the out-neighbor's group; the in-neighbor differs.
	RoleGatekeeper

	// RoleRepresentative — ego shares the in-neighbor's group; the out-neighbor differs.
	RoleRepresentative

	// RoleLiaison — in- and out-neighbor share a group distinct from the ego's.
	RoleLiaison

	// RoleCosmopolitan — all three labels pairwise distinct.
	RoleCosmopolitan

	// numRoles bounds the Role domain; keep it last.
	numRoles
)

// String implements fmt.Stringer for diagnostics and test output.
func (r Role) String() string {
	switch r {
	case RoleCoordinator:
		return "coordinator"
	case RoleGatekeeper:
		return "gatekeeper"
	case RoleRepresentative:
		return "representative"
	case RoleLiaison:
		return "liaison"
	case RoleCosmopolitan:
		return "cosmopolitan"
	default:
		return "role(" + strconv.Itoa(int(r)) + ")"
	}
}

// Profile tallies how many classified two-paths put one ego in each role.
// It is the per-vertex value of the Census result.
type Profile struct {
	Coordinator    int
	Gatekeeper     int
	Representative int
	Liaison        int
	Cosmopolitan   int
}

// Count returns the tally for one role; unknown roles count 0.
func (p Profile) Count(r Role) int {
	switch r {
	case RoleCoordinator:
		return p.Coordinator
	case RoleGatekeeper:
		return p.Gatekeeper
	case RoleRepresentative:
		return p.Representative
	case RoleLiaison:
		return p.Liaison
	case RoleCosmopolitan:
		return p.Cosmopolitan
	default:
		return 0
	}
}

// Total returns the number of two-paths classified for the ego.
func (p Profile) Total() int {
	return p.Coordinator + p.Gatekeeper + p.Representative + p.Liaison + p.Cosmopolitan
}

// add increments the tally for role r.
func (p *Profile) add(r Role) {
	switch r {
	case RoleCoordinator:
		p.Coordinator++
	case RoleGatekeeper:
		p.Gatekeeper++
	case RoleRepresentative:
		p.Representative++
	case RoleLiaison:
		p.Liaison++
	case RoleCosmopolitan:
		p.Cosmopolitan++
	}
}
