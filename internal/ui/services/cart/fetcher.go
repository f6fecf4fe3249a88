package cart

// FetcherState is the lifecycle state of the shared submission channel
type FetcherState int

const (
	// Idle means no submission is in flight
	Idle FetcherState = iota
	// Submitting means at least one submission is in flight
	Submitting
)

func (s FetcherState) String() string {
	if s == Submitting {
		return "Submitting"
	}
	return "Idle"
}

// Fetcher is the single submission channel shared by every add-to-cart
// button. Submissions are independent; the channel only exposes the data of
// the most recent settlement.
type Fetcher struct {
	next     uint64
	inflight map[uint64]struct{}
	data     *Payload
	rev      uint64 // bumped on every settlement; identifies data
}

// NewFetcher creates an idle fetcher with no data
func NewFetcher() *Fetcher {
	return &Fetcher{inflight: make(map[uint64]struct{})}
}

// Submit registers a new in-flight submission and returns its ID
func (f *Fetcher) Submit() uint64 {
	f.next++
	f.inflight[f.next] = struct{}{}
	return f.next
}

// Settle records the outcome of submission id. Unknown or already settled
// IDs are ignored.
func (f *Fetcher) Settle(id uint64, payload Payload) bool {
	if _, ok := f.inflight[id]; !ok {
		return false
	}
	delete(f.inflight, id)
	f.data = &payload
	f.rev++
	return true
}

// State returns Submitting while anything is in flight
func (f *Fetcher) State() FetcherState {
	if len(f.inflight) > 0 {
		return Submitting
	}
	return Idle
}

// Data returns the latest payload and its identity; nil before any settlement
func (f *Fetcher) Data() (*Payload, uint64) {
	return f.data, f.rev
}

// InFlight returns the number of unsettled submissions
func (f *Fetcher) InFlight() int {
	return len(f.inflight)
}
