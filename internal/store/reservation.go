package store

// Reservation is a booking for a hotel room on a given date.
type Reservation struct {
	ID         int    `json:"id"`
	Hotel      string `json:"hotel"`
	Date       string `json:"date"`
	RoomType   string `json:"roomType"`
	GuestCount int    `json:"guestCount"`
	Status     string `json:"status,omitempty"`
}

// NewReservation holds the caller-supplied fields of a reservation to create.
// Nothing is required: missing fields are stored as zero values.
type NewReservation struct {
	Hotel      string `json:"hotel"`
	Date       string `json:"date"`
	RoomType   string `json:"roomType"`
	GuestCount int    `json:"guestCount"`
	Status     string `json:"status"`
}

// ReservationUpdate is a partial update. A nil field is left untouched,
// a non-nil one is applied even when it holds a zero value.
type ReservationUpdate struct {
	Hotel      *string `json:"hotel"`
	Date       *string `json:"date"`
	RoomType   *string `json:"roomType"`
	GuestCount *int    `json:"guestCount"`
	Status     *string `json:"status"`
}

// Empty reports whether the update carries no field at all.
func (u ReservationUpdate) Empty() bool {
	return u.Hotel == nil && u.Date == nil && u.RoomType == nil && u.GuestCount == nil && u.Status == nil
}

func (u ReservationUpdate) applyTo(r *Reservation) {
	if u.Hotel != nil {
		r.Hotel = *u.Hotel
	}
	if u.Date != nil {
		r.Date = *u.Date
	}
	if u.RoomType != nil {
		r.RoomType = *u.RoomType
	}
	if u.GuestCount != nil {
		r.GuestCount = *u.GuestCount
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
}
