// Package store keeps hotel reservations in process memory.
//
// Records live in an insertion-ordered slice with an id -> position index
// next to it. One RWMutex covers every operation, so each create, update and
// delete is atomic with respect to the others.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no reservation has the requested id.
var ErrNotFound = errors.New("reservation not found")

// Store is the in-memory reservation collection. The zero value is not
// usable; build one with New.
type Store struct {
	mu     sync.RWMutex
	items  []Reservation
	index  map[int]int // id -> position in items
	nextID int
}

// New returns an empty store. The first created reservation gets id 1.
func New() *Store {
	return &Store{
		items:  []Reservation{},
		index:  map[int]int{},
		nextID: 1,
	}
}

// Create stores a new reservation and returns it with its assigned id.
// Ids come from a counter and are never reused, even after deletes.
func (s *Store) Create(in NewReservation) Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Reservation{
		ID:         s.nextID,
		Hotel:      in.Hotel,
		Date:       in.Date,
		RoomType:   in.RoomType,
		GuestCount: in.GuestCount,
		Status:     in.Status,
	}
	s.nextID++
	s.index[r.ID] = len(s.items)
	s.items = append(s.items, r)
	return r
}

// List returns every reservation in creation order.
func (s *Store) List() []Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Reservation, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the reservation with the given id.
func (s *Store) Get(id int) (Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return Reservation{}, ErrNotFound
	}
	return s.items[pos], nil
}

// Update applies the non-nil fields of u to the reservation with the given
// id and returns the result. Nothing changes when the id is unknown.
func (s *Store) Update(id int, u ReservationUpdate) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return Reservation{}, ErrNotFound
	}
	u.applyTo(&s.items[pos])
	return s.items[pos], nil
}

// Delete removes the reservation with the given id and returns it.
func (s *Store) Delete(id int) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return Reservation{}, ErrNotFound
	}
	removed := s.items[pos]
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	// Everything after pos shifted left by one.
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return removed, nil
}

// Len returns the number of stored reservations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// filter returns, in creation order, the reservations matching keep.
func (s *Store) filter(keep func(Reservation) bool) []Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Reservation{}
	for _, r := range s.items {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
