package handler

import (
	"context"
	"sync"
	"time"

	"github.com/classtrack/occupancy-tracker/internal/model"
	"github.com/classtrack/occupancy-tracker/internal/repository"
)

// --- fake AccountStore ---

type fakeAccountStore struct {
	mu       sync.Mutex
	nextID   uint64
	accounts map[string]model.Account // by username
	plains   map[string]string        // username -> plaintext for Authenticate
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		nextID:   1,
		accounts: make(map[string]model.Account),
		plains:   make(map[string]string),
	}
}

func (f *fakeAccountStore) Create(ctx context.Context, username, password string, cost int) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[username]; ok {
		return 0, repository.ErrUsernameExists
	}
	id := f.nextID
	f.nextID++
	f.accounts[username] = model.Account{ID: id, Username: username, CreatedAt: time.Now()}
	f.plains[username] = password
	return id, nil
}

func (f *fakeAccountStore) Authenticate(ctx context.Context, username, password string) (model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[username]
	if !ok || f.plains[username] != password {
		return model.Account{}, repository.ErrInvalidCredentials
	}
	return a, nil
}

func (f *fakeAccountStore) GetByID(ctx context.Context, id uint64) (model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Account{}, repository.ErrInvalidCredentials
}

// --- fake RoomStore ---

type fakeRoomStore struct {
	rooms []model.Room
}

func (f *fakeRoomStore) List(ctx context.Context) ([]model.Room, error) {
	return f.rooms, nil
}

func (f *fakeRoomStore) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	for i := range f.rooms {
		if f.rooms[i].ID == id {
			return &f.rooms[i], nil
		}
	}
	return nil, repository.ErrRoomNotFound
}

// --- fake SeatStore ---

// fakeSeatStore mimics the repository's transactional semantics in
// memory: the seat overwrite and the ledger append happen under one
// lock, so concurrent callers are serialized the way the database
// transaction serializes them.
type fakeSeatStore struct {
	mu     sync.Mutex
	seats  map[uint64]*model.Seat
	ledger []model.UpdateEvent
	nextID uint64
}

func newFakeSeatStore(seats ...model.Seat) *fakeSeatStore {
	f := &fakeSeatStore{seats: make(map[uint64]*model.Seat), nextID: 1}
	for i := range seats {
		s := seats[i]
		f.seats[s.ID] = &s
	}
	return f
}

func (f *fakeSeatStore) ListByRoom(ctx context.Context, roomID uint64) ([]model.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Seat
	for _, s := range f.seats {
		if s.RoomID == roomID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSeatStore) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.seats[id]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSeatStore) CountByStatus(ctx context.Context, roomID uint64, status string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.seats {
		if s.RoomID == roomID && s.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeSeatStore) SetStatus(ctx context.Context, seatID uint64, status string, actorID uint64) (*model.Seat, error) {
	if !model.ValidStatus(status) {
		return nil, repository.ErrInvalidStatus
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.seats[seatID]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	now := time.Now().UTC()
	s.Status = status
	s.UpdatedAt = now
	f.ledger = append(f.ledger, model.UpdateEvent{
		ID:         f.nextID,
		SeatID:     seatID,
		AccountID:  actorID,
		Status:     status,
		RecordedAt: now,
	})
	f.nextID++
	cp := *s
	return &cp, nil
}

// lastEntry returns the newest ledger entry for a seat, nil if none.
func (f *fakeSeatStore) lastEntry(seatID uint64) *model.UpdateEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.ledger) - 1; i >= 0; i-- {
		if f.ledger[i].SeatID == seatID {
			e := f.ledger[i]
			return &e
		}
	}
	return nil
}

// History makes the fake double as a LedgerStore.
func (f *fakeSeatStore) History(ctx context.Context, seatID uint64) ([]model.UpdateEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.UpdateEvent
	for _, e := range f.ledger {
		if e.SeatID == seatID {
			out = append(out, e)
		}
	}
	return out, nil
}
