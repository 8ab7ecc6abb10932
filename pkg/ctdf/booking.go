package ctdf

import "time"

// BookingConfirmation summarises a confirmed itinerary. It is handed back to the
// caller only and never stored.
type BookingConfirmation struct {
	BookingReference string `groups:"basic"`

	Itinerary Itinerary `groups:"basic"`

	TotalMinutes int   `groups:"basic"`
	WaitMinutes  []int `groups:"basic"`

	ArriveBeforeMinutes int `groups:"basic"`

	CreationDateTime time.Time `groups:"detailed"`
}
