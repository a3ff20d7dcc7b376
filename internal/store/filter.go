package store

// Filters match a single criterion each and keep creation order.
// They never return nil.

// FilterByHotel returns reservations whose hotel equals hotel exactly.
func (s *Store) FilterByHotel(hotel string) []Reservation {
	return s.filter(func(r Reservation) bool { return r.Hotel == hotel })
}

// FilterByDateRange returns reservations with start <= date <= end.
// Dates are compared as strings, which orders YYYY-MM-DD chronologically.
func (s *Store) FilterByDateRange(start, end string) []Reservation {
	return s.filter(func(r Reservation) bool { return r.Date >= start && r.Date <= end })
}

// FilterByRoomType returns reservations whose room type equals roomType exactly.
func (s *Store) FilterByRoomType(roomType string) []Reservation {
	return s.filter(func(r Reservation) bool { return r.RoomType == roomType })
}

// FilterByStatus returns reservations whose status equals status exactly.
func (s *Store) FilterByStatus(status string) []Reservation {
	return s.filter(func(r Reservation) bool { return r.Status == status })
}

// FilterByGuestCount returns reservations for exactly n guests.
func (s *Store) FilterByGuestCount(n int) []Reservation {
	return s.filter(func(r Reservation) bool { return r.GuestCount == n })
}
