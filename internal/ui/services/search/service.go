package search

import (
	"context"
	"fmt"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"shopgrip/internal/eventbus"
)

// Session owns the predictive search overlay: the input text, the sequence
// counter for issued lookups and the last accepted result set.
//
// Only a response for the highest issued sequence above the close floor is
// accepted, so responses arriving out of order never replace newer results.
// Session is driven from Update and is not safe for concurrent use.
type Session struct {
	text    string
	state   UIState
	results *ResultSet // nil until a lookup is accepted

	seq     uint64 // highest issued sequence
	floor   uint64 // sequences at or below this are invalidated
	pending bool
	issued  string

	minLen    int
	bus       eventbus.EventBus
	onFailure FailureFunc
}

// NewSession creates a closed session. bus may be nil.
func NewSession(bus eventbus.EventBus, minLen int) *Session {
	if minLen < 1 {
		minLen = 1
	}
	return &Session{
		state:  Closed,
		minLen: minLen,
		bus:    bus,
	}
}

// SetFailureHook registers fn to be told about failed lookups
func (s *Session) SetFailureHook(fn FailureFunc) {
	s.onFailure = fn
}

// OnInputChange stores the input text. It never issues a lookup.
func (s *Session) OnInputChange(text string) {
	s.text = text
}

// OnFocus opens the overlay
func (s *Session) OnFocus() {
	if s.state.IsOpen() {
		return
	}
	s.state = s.impliedState()
}

func (s *Session) impliedState() UIState {
	switch {
	case s.text == "":
		return OpenEmpty
	case s.pending:
		return OpenLoading
	case s.results == nil:
		return OpenEmpty
	case s.results.Len() > 0:
		return OpenResults
	default:
		return OpenNoMatches
	}
}

// OnClose hides the overlay, clears text and results and invalidates every
// outstanding lookup
func (s *Session) OnClose() {
	s.text = ""
	s.results = nil
	s.state = Closed
	s.invalidate()
}

func (s *Session) invalidate() {
	s.floor = s.seq
	s.pending = false
	s.issued = ""
}

// Fire is called when the debounce timer elapses. It returns the lookup to
// issue, if any.
func (s *Session) Fire() (Query, bool) {
	if !s.state.IsOpen() {
		return Query{}, false
	}

	if utf8.RuneCountInString(s.text) < s.minLen {
		s.results = nil
		s.state = OpenEmpty
		s.invalidate()
		return Query{}, false
	}

	s.seq++
	s.pending = true
	s.issued = s.text
	s.state = OpenLoading

	q := Query{Text: s.text, Seq: s.seq}
	if s.bus != nil {
		s.bus.Publish(eventbus.SearchIssuedEvent{Seq: q.Seq, Query: q.Text})
	}
	return q, true
}

// Settle applies the outcome of lookup q. A failure counts as an empty
// result. It reports whether the outcome was accepted.
func (s *Session) Settle(q Query, results *ResultSet, err error) bool {
	seq := q.Seq
	accepted := seq == s.seq && seq > s.floor && s.state.IsOpen()

	if s.bus != nil {
		s.bus.Publish(eventbus.SearchSettledEvent{
			Seq:      seq,
			Query:    q.Text,
			Results:  results.Len(),
			Accepted: accepted,
			Err:      err,
		})
	}

	if !accepted {
		log.Debugf("Discarding stale search response seq=%d (latest=%d floor=%d)", seq, s.seq, s.floor)
		return false
	}

	s.pending = false
	if err != nil {
		log.Warnf("Search for %q failed: %v", q.Text, err)
		if s.onFailure != nil {
			s.onFailure(q, err)
		}
		results = nil
	}
	if results == nil {
		results = NewResultSet(nil)
	}

	s.results = results
	if results.Len() > 0 {
		s.state = OpenResults
	} else {
		s.state = OpenNoMatches
	}
	return true
}

// Apply settles a SettledMsg
func (s *Session) Apply(msg SettledMsg) bool {
	var rs *ResultSet
	if msg.Err == nil {
		rs = NewResultSet(msg.Results)
	}
	return s.Settle(msg.Query, rs, msg.Err)
}

// Text returns the current input text
func (s *Session) Text() string {
	return s.text
}

// State returns the overlay state
func (s *Session) State() UIState {
	return s.state
}

// Results returns the accepted results, nil when none are loaded
func (s *Session) Results() *ResultSet {
	return s.results
}

// LatestSeq returns the highest issued sequence number
func (s *Session) LatestSeq() uint64 {
	return s.seq
}

// IssuedText returns the text of the latest issued lookup
func (s *Session) IssuedText() string {
	return s.issued
}

// MinLength returns the minimum query length that issues a lookup
func (s *Session) MinLength() int {
	return s.minLen
}

// Status returns the line shown under the input
func (s *Session) Status() string {
	switch s.state {
	case OpenLoading:
		return "Searching..."
	case OpenNoMatches:
		return fmt.Sprintf("No results found for %q", s.issued)
	case OpenEmpty:
		if s.text != "" {
			return fmt.Sprintf("Type at least %d characters", s.minLen)
		}
	}
	return ""
}

// LookupCmd runs q against provider and reports the outcome as a SettledMsg
func LookupCmd(ctx context.Context, provider Provider, q Query) tea.Cmd {
	return func() tea.Msg {
		results, err := provider.Lookup(ctx, q.Text)
		return SettledMsg{Query: q, Results: results, Err: err}
	}
}
