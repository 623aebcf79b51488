package formsync

import (
	"fmt"
	"strings"
)

// State of a document-edit session.
type State string

const (
	StateLoading    State = "loading"
	StateLoaded     State = "loaded"
	StateSaving     State = "saving"
	StateCancelling State = "cancelling"
	StateErrored    State = "errored"
	StateClosed     State = "closed"
)

// Session drives the edit lifecycle shared by ticket/deposit/voucher
// editors: Loading -> Loaded -> {Saving, Cancelling} -> Loaded|Closed.
// A failed load parks the session in Errored until the operator closes
// it; there is no retry. No local mutation happens before the server
// confirms a save or cancel.
type Session struct {
	state        State
	cancelReason string
	lastError    string
}

// NewSession starts in Loading.
func NewSession() *Session {
	return &Session{state: StateLoading}
}

func (s *Session) State() State { return s.state }

// Busy reports an in-flight save or cancel; the triggering controls
// stay disabled while true so duplicate submissions cannot happen.
func (s *Session) Busy() bool {
	return s.state == StateSaving || s.state == StateCancelling
}

func (s *Session) LastError() string { return s.lastError }

// CancelReason returns the operator-supplied reason captured by BeginCancel.
func (s *Session) CancelReason() string { return s.cancelReason }

// LoadSucceeded moves Loading -> Loaded.
func (s *Session) LoadSucceeded() error {
	if s.state != StateLoading {
		return fmt.Errorf("cannot finish loading from %s", s.state)
	}
	s.state = StateLoaded
	return nil
}

// LoadFailed moves Loading -> Errored. Only Close leaves Errored.
func (s *Session) LoadFailed(msg string) error {
	if s.state != StateLoading {
		return fmt.Errorf("cannot fail loading from %s", s.state)
	}
	s.state = StateErrored
	s.lastError = msg
	return nil
}

// BeginSave moves Loaded -> Saving.
func (s *Session) BeginSave() error {
	if s.state != StateLoaded {
		return fmt.Errorf("cannot save from %s", s.state)
	}
	s.state = StateSaving
	s.lastError = ""
	return nil
}

// SaveSucceeded closes the editor; the parent is expected to refresh.
func (s *Session) SaveSucceeded() error {
	if s.state != StateSaving {
		return fmt.Errorf("no save in flight")
	}
	s.state = StateClosed
	return nil
}

// SaveFailed surfaces the error and returns to Loaded.
func (s *Session) SaveFailed(msg string) error {
	if s.state != StateSaving {
		return fmt.Errorf("no save in flight")
	}
	s.state = StateLoaded
	s.lastError = msg
	return nil
}

// BeginCancel requires a non-empty free-text reason.
func (s *Session) BeginCancel(reason string) error {
	if s.state != StateLoaded {
		return fmt.Errorf("cannot cancel from %s", s.state)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("cancel reason is required")
	}
	s.state = StateCancelling
	s.cancelReason = reason
	s.lastError = ""
	return nil
}

// CancelSucceeded closes the editor.
func (s *Session) CancelSucceeded() error {
	if s.state != StateCancelling {
		return fmt.Errorf("no cancel in flight")
	}
	s.state = StateClosed
	return nil
}

// CancelFailed surfaces the error and returns to Loaded.
func (s *Session) CancelFailed(msg string) error {
	if s.state != StateCancelling {
		return fmt.Errorf("no cancel in flight")
	}
	s.state = StateLoaded
	s.lastError = msg
	return nil
}

// Close ends the session manually. Allowed from Loaded and Errored;
// an in-flight save or cancel must settle first.
func (s *Session) Close() error {
	if s.Busy() {
		return fmt.Errorf("cannot close while %s", s.state)
	}
	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	return nil
}
