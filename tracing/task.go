// Package tracing follows spans of activity at the lot, such as a gate cycle
// from opening to closing or a car's stay in a spot, and hands them to
// tracers that store or summarize them.
package tracing

import "github.com/sarchlab/parkinglot/timing"

// A Task is a span of activity with a start and an end.
type Task struct {
	ID        string           `json:"id"`
	ParentID  string           `json:"parent_id"`
	Kind      string           `json:"kind"`
	What      string           `json:"what"`
	Where     string           `json:"where"`
	StartTime timing.VTimeInMs `json:"start_time"`
	EndTime   timing.VTimeInMs `json:"end_time"`
	Detail    any              `json:"-"`
}

// Duration returns how long the task lasted.
func (t Task) Duration() timing.VTimeInMs {
	return t.EndTime.Since(t.StartTime)
}

// TaskFilter is a function that can filter interesting tasks. If this function
// returns true, the task is considered useful.
type TaskFilter func(t Task) bool

// KindIs returns a filter that keeps tasks of one kind.
func KindIs(kind string) TaskFilter {
	return func(t Task) bool {
		return t.Kind == kind
	}
}
