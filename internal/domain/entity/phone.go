// Package entity contains the core business objects of the project.
package entity

import "time"

// Phone represents a bookable phone device.
type Phone struct {
	ID       int64      `json:"id"`       // Store-assigned identifier, zero until first persisted.
	Name     string     `json:"name"`     // Unique display name of the phone.
	Brand    string     `json:"brand"`    // Manufacturer, used for the capability lookup.
	Device   string     `json:"device"`   // Model name, used for the capability lookup.
	BookedOn *time.Time `json:"bookedOn"` // When the phone was booked, if it is booked.
	BookedBy *int64     `json:"bookedBy"` // ID of the user holding the booking (weak reference).
}

// IsPersisted reports whether the phone has been assigned an ID by the store.
func (p *Phone) IsPersisted() bool {
	return p.ID != 0
}
