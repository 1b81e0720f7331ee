package checkout

import (
	"errors"
	"sync"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/ftuk/checkout/internal/domain"
)

// State is the checkout lifecycle stage.
type State int

const (
	StateForm State = iota
	StateProcessing
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateForm:
		return "form"
	case StateProcessing:
		return "processing"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// DefaultProcessingDelay is the simulated card-network authorization latency.
const DefaultProcessingDelay = 900 * time.Millisecond

// ErrRestartBeforeComplete is returned when restart is attempted before the
// payment has completed.
var ErrRestartBeforeComplete = errors.New("checkout: restart is only valid after completion")

// Session owns the form state and the payment lifecycle for one checkout.
// Field edits, submits and restarts are serialized through its mutex; the
// lifecycle state is owned exclusively by the session and only read by
// callers. Once a valid submit starts the authorization timer it cannot be
// cancelled.
type Session struct {
	mu    sync.Mutex
	clock clockz.Clock
	delay time.Duration

	form        Form
	errs        ValidationErrors
	state       State
	txID        domain.TransactionID
	completedAt time.Time
	done        chan struct{}
}

// NewSession creates a session at the Form stage with default field values.
// A nil clock falls back to the real clock.
func NewSession(clock clockz.Clock, delay time.Duration) *Session {
	if clock == nil {
		clock = clockz.RealClock
	}
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}
	return &Session{
		clock: clock,
		delay: delay,
		form:  NewForm(),
		errs:  ValidationErrors{},
		done:  make(chan struct{}),
	}
}

// SetField normalizes a single raw edit into the form and clears any stored
// validation error for that field. Edits are ignored outside the Form stage.
func (s *Session) SetField(field Field, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateForm {
		return
	}
	s.form = Normalize(s.form, field, raw)
	delete(s.errs, field)
}

// Submit validates the form and, when it passes, transitions to Processing
// and schedules the unconditional completion after the authorization delay.
// When validation fails the errors are stored, no transition happens and
// Submit returns false.
func (s *Session) Submit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateForm {
		return false
	}

	s.errs = Validate(s.form)
	if !s.errs.Valid() {
		return false
	}

	s.state = StateProcessing
	wait := s.clock.After(s.delay)
	done := s.done
	go func() {
		<-wait
		s.complete(done)
	}()
	return true
}

// complete finishes the authorization: the session mints its single
// transaction id here, and every consumer reads that value afterwards.
func (s *Session) complete(done chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateComplete
	s.txID = domain.NewTransactionID()
	s.completedAt = s.clock.Now()
	close(done)
}

// Restart begins a fresh checkout after a completed payment, clearing the
// whole form back to defaults.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateComplete {
		return ErrRestartBeforeComplete
	}
	s.form = NewForm()
	s.errs = ValidationErrors{}
	s.state = StateForm
	s.txID = ""
	s.completedAt = time.Time{}
	s.done = make(chan struct{})
	return nil
}

// Completed returns a channel closed when the current payment attempt
// reaches the Complete stage.
func (s *Session) Completed() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// State returns the current lifecycle stage.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Form returns a snapshot of the current field values.
func (s *Session) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Errors returns a copy of the validation errors from the last submit
// attempt, minus any cleared by later edits.
func (s *Session) Errors() ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(ValidationErrors, len(s.errs))
	for field, msg := range s.errs {
		errs[field] = msg
	}
	return errs
}

// TransactionID returns the id minted on completion, or empty before it.
func (s *Session) TransactionID() domain.TransactionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txID
}

// CompletedAt returns the completion timestamp, zero before completion.
func (s *Session) CompletedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedAt
}

// Order snapshots the data the receipt pipeline consumes. Receipt requests
// are independent of the lifecycle: the snapshot is valid in the Form stage
// (with an empty transaction id) as well as after completion.
func (s *Session) Order() domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Order{
		FullName:      s.form.FullName,
		Email:         s.form.Email,
		Amount:        s.form.Amount,
		TransactionID: s.txID,
	}
}
