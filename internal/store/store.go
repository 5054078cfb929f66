package store

import (
	"sync"

	"inventory_dashboard/internal/models"
)

// AppState is the whole application state.
type AppState struct {
	Auth AuthState `json:"auth"`
	View ViewState `json:"view"`
}

// InitialState returns a logged-out state with a default view.
func InitialState() AppState {
	return AppState{View: InitialViewState()}
}

// Reduce routes an intent to both slice reducers.
func Reduce(s AppState, in Intent) AppState {
	s.Auth = ReduceAuth(s.Auth, in)
	s.View = ReduceView(s.View, in)
	return s
}

// Store serialises intents over an AppState and fans out changes.
// Items slices are replaced wholesale by the reducer and never mutated,
// so snapshots may share them.
type Store struct {
	mu    sync.RWMutex
	state AppState

	subMu  sync.Mutex
	subs   map[int]chan AppState
	nextID int
}

// New returns a store seeded with initial.
func New(initial AppState) *Store {
	return &Store{state: initial, subs: make(map[int]chan AppState)}
}

// Dispatch applies in atomically and returns the resulting state.
func (s *Store) Dispatch(in Intent) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, in)
	s.publish(s.state)
	return s.state
}

// State returns the current snapshot.
func (s *Store) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// BeginFetch issues the next request sequence number, captures the current
// parameters and marks the view as loading, all under one lock.
func (s *Store) BeginFetch() (uint64, models.ViewParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := s.state.View.RequestSeq + 1
	params := s.state.View.Params()
	s.state = Reduce(s.state, FetchPending{Seq: seq})
	s.publish(s.state)
	return seq, params
}

// Subscribe returns a channel that receives the state after each change.
// The channel holds at most one pending snapshot; a slow reader only sees
// the latest. cancel unregisters and closes the channel.
func (s *Store) Subscribe() (<-chan AppState, func()) {
	ch := make(chan AppState, 1)

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// publish must be called with mu held so subscribers see states in order.
func (s *Store) publish(st AppState) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
			// drop the stale pending snapshot and keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}
