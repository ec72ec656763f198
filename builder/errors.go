// File: errors.go — sentinel errors for the builder package.
package builder

import "errors"

// ErrNilGraph indicates that Build received a nil *core.Graph.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrNilConstructor indicates that Build received a nil Constructor.
var ErrNilConstructor = errors.New("builder: constructor is nil")

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")
