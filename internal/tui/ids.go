package tui

import "sync/atomic"

var lastID atomic.Int64

// nextID hands out owner ids so tick messages from one component or session
// are never consumed by another.
func nextID() int {
	return int(lastID.Add(1))
}
