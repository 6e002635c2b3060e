package asyncstate

// Status identifies the phase of an asynchronous computation.
type Status string

const (
	// StatusIdle means no computation has ever run. A store starts Idle and
	// never returns to it.
	StatusIdle Status = "idle"
	// StatusLoading means a computation is in flight.
	StatusLoading Status = "loading"
	// StatusSuccess means the last computation completed with a value.
	StatusSuccess Status = "success"
	// StatusFailure means the last computation raised an error.
	StatusFailure Status = "failure"
)

func (s Status) String() string {
	return string(s)
}

// State is a snapshot of an asynchronous computation: its status plus the
// value or error of the last settled run. Value is meaningful only for
// StatusSuccess and Err only for StatusFailure.
type State[T any] struct {
	Status Status
	Value  T
	Err    error
}

// Idle returns the initial state.
func Idle[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

// Loading returns an in-flight state. It carries no payload.
func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

// Success returns a settled state carrying v.
func Success[T any](v T) State[T] {
	return State[T]{Status: StatusSuccess, Value: v}
}

// Failure returns a settled state carrying err.
func Failure[T any](err error) State[T] {
	return State[T]{Status: StatusFailure, Err: err}
}

func (s State[T]) IsIdle() bool    { return s.Status == StatusIdle }
func (s State[T]) IsLoading() bool { return s.Status == StatusLoading }
func (s State[T]) IsSuccess() bool { return s.Status == StatusSuccess }
func (s State[T]) IsFailure() bool { return s.Status == StatusFailure }
