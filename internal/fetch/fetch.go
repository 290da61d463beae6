// Package fetch models the lifecycle of a single asynchronous retrieval:
// idle until the first request, then loading, then success or error. Each
// request gets a monotonically increasing sequence number so the outcome of
// a superseded request can never overwrite the state of a newer one.
package fetch

// Phase is the current position in the retrieval lifecycle.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Error
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// State tracks one retrieval and its last honored outcome. Exactly one phase
// holds at a time, and a renderer must only show what the phase permits:
// nothing but a loading indicator while loading, nothing but the message on
// error. The zero value is idle and ready to use.
//
// State is not safe for concurrent use; it lives inside a single Bubble Tea
// model and is only touched from Update.
type State[T any] struct {
	phase Phase
	data  T
	err   string
	seq   uint64
}

// Start marks a new retrieval as loading and returns its sequence number.
// Previous data and errors are cleared, and any outcome carrying an older
// sequence number is ignored from here on. There is no way back to idle:
// a fresh Start re-enters loading from any phase.
func (s *State[T]) Start() uint64 {
	s.seq++
	s.phase = Loading
	var zero T
	s.data = zero
	s.err = ""
	return s.seq
}

// Succeed records the data of the retrieval identified by seq and reports
// whether the state changed. Outcomes from superseded retrievals, and second
// outcomes for an already resolved one, are dropped.
func (s *State[T]) Succeed(seq uint64, data T) bool {
	if seq != s.seq || s.phase != Loading {
		return false
	}
	s.phase = Success
	s.data = data
	s.err = ""
	return true
}

// Fail records the error message of the retrieval identified by seq, under
// the same staleness rules as Succeed.
func (s *State[T]) Fail(seq uint64, msg string) bool {
	if seq != s.seq || s.phase != Loading {
		return false
	}
	s.phase = Error
	var zero T
	s.data = zero
	s.err = msg
	return true
}

// Phase returns the current lifecycle phase.
func (s *State[T]) Phase() Phase { return s.phase }

// Data returns the last honored result. Only meaningful in the success phase.
func (s *State[T]) Data() T { return s.data }

// Err returns the last honored error message. Only meaningful in the error
// phase.
func (s *State[T]) Err() string { return s.err }

// Seq returns the sequence number of the most recent Start.
func (s *State[T]) Seq() uint64 { return s.seq }
