// Package session tracks one user sample from upload through classification to reset.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Veraticus/wastewise/internal/advisor"
	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/google/uuid"
)

// State is a session lifecycle state.
type State string

// Session states.
const (
	StateIdle        State = "idle"
	StateReady       State = "ready"
	StateClassifying State = "classifying"
	StateClassified  State = "classified"
)

// Session transition errors.
var (
	ErrNoSample               = errors.New("no sample provided")
	ErrClassificationInFlight = errors.New("classification already in progress")
	ErrAlreadyClassified      = errors.New("sample already classified")
)

// Advisor is the part of advisor.Advisor a session needs.
type Advisor interface {
	Advise(ctx context.Context, sample advisor.Sample) (*model.ClassificationResult, error)
}

// Session is a long-lived, cycling classification session. It is safe for
// concurrent use, but allows at most one classification in flight.
type Session struct {
	advisor    Advisor
	sample     *advisor.Sample
	result     *model.ClassificationResult
	lastErr    error
	id         string
	state      State
	generation uint64
	mu         sync.Mutex
}

// Snapshot is a point-in-time copy of session state.
type Snapshot struct {
	Result     *model.ClassificationResult `json:"result,omitempty"`
	LastError  string                      `json:"last_error,omitempty"`
	ID         string                      `json:"id"`
	State      State                       `json:"state"`
	SampleName string                      `json:"sample,omitempty"`
	Generation uint64                      `json:"generation"`
	Retryable  bool                        `json:"retryable"`
}

// New creates an idle session.
func New(a Advisor) *Session {
	return &Session{
		advisor: a,
		id:      uuid.NewString(),
		state:   StateIdle,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the current classification, or nil.
func (s *Session) Result() *model.ClassificationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// ProvideSample sets a new sample, discarding any previous result.
func (s *Session) ProvideSample(sample advisor.Sample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClassifying {
		return ErrClassificationInFlight
	}

	s.sample = &sample
	s.result = nil
	s.lastErr = nil
	s.state = StateReady
	s.generation++

	slog.Debug("Sample provided", "session", s.id, "sample", sample.Name, "generation", s.generation)
	return nil
}

// Classify runs the advisor on the current sample. The lock is not held while
// the advisor runs; if the session is reset or given a new sample meanwhile,
// the result is dropped and common.ErrStaleResult is returned.
func (s *Session) Classify(ctx context.Context) (*model.ClassificationResult, error) {
	s.mu.Lock()
	switch s.state {
	case StateIdle:
		s.mu.Unlock()
		return nil, ErrNoSample
	case StateClassifying:
		s.mu.Unlock()
		return nil, ErrClassificationInFlight
	case StateClassified:
		s.mu.Unlock()
		return nil, ErrAlreadyClassified
	}

	sample := *s.sample
	gen := s.generation
	s.state = StateClassifying
	s.lastErr = nil
	s.mu.Unlock()

	result, err := s.advisor.Advise(ctx, sample)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		slog.Debug("Discarding stale classification",
			"session", s.id,
			"started_generation", gen,
			"current_generation", s.generation)
		return nil, common.ErrStaleResult
	}

	if err != nil {
		s.state = StateReady
		s.lastErr = err
		return nil, err
	}

	s.result = result
	s.state = StateClassified
	return result, nil
}

// Reset returns the session to idle. An in-flight classification will be discarded.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sample = nil
	s.result = nil
	s.lastErr = nil
	s.state = StateIdle
	s.generation++
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:         s.id,
		State:      s.state,
		Result:     s.result,
		Generation: s.generation,
	}
	if s.sample != nil {
		snap.SampleName = s.sample.Name
	}
	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
		snap.Retryable = common.IsRetryable(s.lastErr)
	}
	return snap
}

// LastError returns the failure from the most recent classification attempt.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s State) String() string {
	return string(s)
}

// Describe returns a short human-readable description of the state.
func (s State) Describe() string {
	switch s {
	case StateIdle:
		return "waiting for a sample"
	case StateReady:
		return "sample ready to classify"
	case StateClassifying:
		return "analyzing sample"
	case StateClassified:
		return "classified"
	default:
		return fmt.Sprintf("unknown state %q", string(s))
	}
}
