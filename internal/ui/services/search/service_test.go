package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopgrip/internal/domain"
	"shopgrip/internal/eventbus"
	"shopgrip/internal/ui/debounce"
)

func products(titles ...string) []domain.ProductSummary {
	out := make([]domain.ProductSummary, 0, len(titles))
	for _, t := range titles {
		out = append(out, domain.ProductSummary{ID: "gid://" + t, Handle: t, Title: t})
	}
	return out
}

func openSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(nil, 2)
	s.OnFocus()
	require.Equal(t, OpenEmpty, s.State())
	return s
}

func typeAndFire(t *testing.T, s *Session, text string) Query {
	t.Helper()
	s.OnInputChange(text)
	q, ok := s.Fire()
	require.True(t, ok)
	return q
}

func TestFocusOpensEmpty(t *testing.T) {
	s := NewSession(nil, 2)
	assert.Equal(t, Closed, s.State())
	assert.Nil(t, s.Results())

	s.OnFocus()
	assert.Equal(t, OpenEmpty, s.State())
	assert.Equal(t, "", s.Status())
}

func TestInputChangeDoesNotIssueLookup(t *testing.T) {
	s := openSession(t)
	s.OnInputChange("shoe")

	assert.Equal(t, "shoe", s.Text())
	assert.Equal(t, OpenEmpty, s.State())
	assert.Zero(t, s.LatestSeq())
}

func TestDebouncedBurstIssuesOneLookup(t *testing.T) {
	s := openSession(t)
	timer := debounce.New(5 * time.Millisecond)

	var cmds []func() any
	for _, text := range []string{"s", "sh", "sho", "shoe"} {
		s.OnInputChange(text)
		cmd := timer.Trigger()
		cmds = append(cmds, func() any { return cmd() })
	}

	var issued []Query
	for _, run := range cmds {
		msg, ok := run().(debounce.FiredMsg)
		if !ok || !timer.Fired(msg) {
			continue
		}
		if q, ok := s.Fire(); ok {
			issued = append(issued, q)
		}
	}

	require.Len(t, issued, 1)
	assert.Equal(t, Query{Text: "shoe", Seq: 1}, issued[0])
	assert.Equal(t, OpenLoading, s.State())
	assert.Equal(t, "Searching...", s.Status())
}

func TestShortQueryIssuesNothingAndClearsResults(t *testing.T) {
	s := openSession(t)
	q := typeAndFire(t, s, "boot")
	require.True(t, s.Settle(q, NewResultSet(products("boot")), nil))
	require.Equal(t, OpenResults, s.State())

	for _, text := range []string{"b", ""} {
		s.OnInputChange(text)
		_, ok := s.Fire()
		assert.False(t, ok)
		assert.Nil(t, s.Results())
		assert.Equal(t, OpenEmpty, s.State())
	}
	assert.Equal(t, uint64(1), s.LatestSeq())
}

func TestMinimumLengthCountsRunes(t *testing.T) {
	s := openSession(t)
	s.OnInputChange("é")
	_, ok := s.Fire()
	assert.False(t, ok)

	s.OnInputChange("éa")
	_, ok = s.Fire()
	assert.True(t, ok)
}

func TestOutOfOrderResponsesKeepLatest(t *testing.T) {
	s := openSession(t)
	sh := typeAndFire(t, s, "sh")
	shoe := typeAndFire(t, s, "shoe")
	require.Equal(t, uint64(1), sh.Seq)
	require.Equal(t, uint64(2), shoe.Seq)

	assert.True(t, s.Settle(shoe, NewResultSet(products("Trail Runner Shoe")), nil))
	assert.False(t, s.Settle(sh, NewResultSet(products("Shell", "Shirt", "Shoe")), nil))

	assert.Equal(t, OpenResults, s.State())
	require.Equal(t, 1, s.Results().Len())
	first, _ := s.Results().At(0)
	assert.Equal(t, "Trail Runner Shoe", first.Title)
}

func TestOlderResponseArrivingFirstIsDiscarded(t *testing.T) {
	s := openSession(t)
	sh := typeAndFire(t, s, "sh")
	shoe := typeAndFire(t, s, "shoe")

	assert.False(t, s.Settle(sh, NewResultSet(products("Shell")), nil))
	assert.Equal(t, OpenLoading, s.State())
	assert.Nil(t, s.Results())

	assert.True(t, s.Settle(shoe, NewResultSet(nil), nil))
	assert.Equal(t, OpenNoMatches, s.State())
	assert.Equal(t, `No results found for "shoe"`, s.Status())
}

func TestCloseInvalidatesOutstandingLookups(t *testing.T) {
	s := openSession(t)
	q := typeAndFire(t, s, "shoe")

	s.OnClose()
	assert.False(t, s.Settle(q, NewResultSet(products("Shoe")), nil))
	assert.Equal(t, Closed, s.State())
	assert.Nil(t, s.Results())
	assert.Equal(t, "", s.Text())

	// Reopening does not resurrect the pre-close lookup either
	s.OnFocus()
	assert.False(t, s.Settle(q, NewResultSet(products("Shoe")), nil))
	assert.Equal(t, OpenEmpty, s.State())
	assert.Nil(t, s.Results())
}

func TestFireWhileClosedIsNoop(t *testing.T) {
	s := NewSession(nil, 2)
	s.OnInputChange("shoe")
	_, ok := s.Fire()
	assert.False(t, ok)
	assert.Zero(t, s.LatestSeq())
}

func TestShortQueryInvalidatesPendingLookup(t *testing.T) {
	s := openSession(t)
	q := typeAndFire(t, s, "shoe")

	s.OnInputChange("s")
	_, ok := s.Fire()
	require.False(t, ok)

	assert.False(t, s.Settle(q, NewResultSet(products("Shoe")), nil))
	assert.Equal(t, OpenEmpty, s.State())
	assert.Nil(t, s.Results())
}

func TestFailureCountsAsNoMatches(t *testing.T) {
	s := openSession(t)
	var failed []Query
	s.SetFailureHook(func(q Query, err error) { failed = append(failed, q) })

	q := typeAndFire(t, s, "shoe")
	assert.True(t, s.Settle(q, nil, errors.New("connection reset")))

	assert.Equal(t, OpenNoMatches, s.State())
	require.NotNil(t, s.Results())
	assert.Zero(t, s.Results().Len())
	assert.Equal(t, []Query{q}, failed)
}

func TestStaleFailureIsIgnored(t *testing.T) {
	s := openSession(t)
	hookCalls := 0
	s.SetFailureHook(func(Query, error) { hookCalls++ })

	old := typeAndFire(t, s, "sh")
	latest := typeAndFire(t, s, "shoe")
	require.True(t, s.Settle(latest, NewResultSet(products("Shoe")), nil))

	assert.False(t, s.Settle(old, nil, errors.New("timeout")))
	assert.Equal(t, OpenResults, s.State())
	assert.Zero(t, hookCalls)
}

func TestFocusRestoresImpliedState(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(s *Session)
		want    UIState
	}{
		{"empty text", func(s *Session) {}, OpenEmpty},
		{"text without results", func(s *Session) { s.OnInputChange("shoe") }, OpenEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(nil, 2)
			tt.prepare(s)
			s.OnFocus()
			assert.Equal(t, tt.want, s.State())
		})
	}
}

func TestSessionPublishesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	issued := make(chan eventbus.DomainEvent, 1)
	settled := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventSearchIssued, func(e eventbus.DomainEvent) { issued <- e })
	bus.Subscribe(eventbus.EventSearchSettled, func(e eventbus.DomainEvent) { settled <- e })

	s := NewSession(bus, 2)
	s.OnFocus()
	q := typeAndFire(t, s, "boot")
	s.Settle(q, NewResultSet(products("Leather Boot")), nil)

	select {
	case e := <-issued:
		assert.Equal(t, eventbus.SearchIssuedEvent{Seq: 1, Query: "boot"}, e)
	case <-time.After(time.Second):
		t.Fatal("no SearchIssued event")
	}
	select {
	case e := <-settled:
		ev := e.(eventbus.SearchSettledEvent)
		assert.True(t, ev.Accepted)
		assert.Equal(t, 1, ev.Results)
	case <-time.After(time.Second):
		t.Fatal("no SearchSettled event")
	}
}

type fakeProvider struct {
	results []domain.ProductSummary
	err     error
}

func (p fakeProvider) Lookup(_ context.Context, _ string) ([]domain.ProductSummary, error) {
	return p.results, p.err
}

func TestLookupCmdAndApply(t *testing.T) {
	s := openSession(t)
	q := typeAndFire(t, s, "sock")

	msg := LookupCmd(context.Background(), fakeProvider{results: products("Wool Sock Pack", "Wool Sock Pack")}, q)()
	settled, ok := msg.(SettledMsg)
	require.True(t, ok)
	require.True(t, s.Apply(settled))

	assert.Equal(t, 1, s.Results().Len(), "duplicate IDs collapse")
	_, found := s.Results().Get("gid://Wool Sock Pack")
	assert.True(t, found)

	failing := typeAndFire(t, s, "socks")
	msg = LookupCmd(context.Background(), fakeProvider{err: errors.New("503")}, failing)()
	require.True(t, s.Apply(msg.(SettledMsg)))
	assert.Equal(t, OpenNoMatches, s.State())
}
