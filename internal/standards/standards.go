// Package standards stamps code-mandated efficiencies and performance curves
// onto equipment the template builders constructed. Each Apply function reads
// the capacity or size already set on the component, picks the tier from the
// code tables, and writes the derived efficiency back. Components still
// waiting on autosizing produce an error.
package standards

import "errors"

// ErrNotSized is returned when a component's capacity or volume field is
// still nil, meaning sizing has not run yet.
var ErrNotSized = errors.New("component capacity not set")
