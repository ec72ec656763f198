// Package brokerage classifies Gould–Fernandez brokerage roles: for each
// two-path a→ego→b it assigns one of five roles based solely on the three
// group labels involved, and Census tallies those roles per ego.
//
// Roles (tie-break order is part of the contract — the first matching rule
// wins, since several textual descriptions can overlap on equal labels):
//
//	Coordinator    — all three labels equal: ego brokers within its own group.
//	Gatekeeper     — ego and b share a group, a does not: ego gates incoming
//	                 flow from another group toward its own.
//	Representative — ego and a share a group, b does not: ego speaks for its
//	                 group toward an outsider.
//	Liaison        — a and b share a group distinct from ego's: ego bridges
//	                 two peers of a foreign group.
//	Cosmopolitan   — all three labels pairwise distinct.
//
// These five cases are mutually exclusive and exhaustive over three
// equality-comparable labels.
//
// Labels are generic (any comparable type): the classifier only ever
// compares labels for equality, never orders them. Group assignments are
// supplied per call — map-shaped (vertex → label) or array-shaped via
// GroupsFromSlice — and are never stored.
//
// Census iterates, for each ego, every (in-neighbor, out-neighbor) pair
// drawn from the ego's in- and out-neighbor sets. The ego itself is dropped
// from both sets — so self-loops never produce a two-path — and pairs whose
// two endpoints coincide are skipped: a reciprocated dyad is not a triad.
//
// Errors (sentinel):
//
//	ErrNilGraph  if the provided graph is nil.
//	ErrBadGroups if a group assignment does not cover the vertex set
//	             (wrong slice length, or a vertex missing from the map).
package brokerage
