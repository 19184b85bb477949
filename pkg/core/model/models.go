package model

import "fmt"

// RequestStatus is the lifecycle state of a volunteer registration request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) IsValid() bool {
	return s == RequestPending || s == RequestApproved || s == RequestRejected
}

// DefaultMaxVolunteers is applied to events that don't declare a capacity.
const DefaultMaxVolunteers = 10

// Coordinates is an optional lat/long pair attached to an event location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Event represents a community event open for volunteering.
// IDs are millisecond-epoch strings, so id order is creation order.
// CurrentVolunteers is a denormalized cache: it is recomputed from
// volunteer assignments on every derivation pass and never trusted
// as read from storage.
type Event struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Date                string       `json:"date"`
	Time                string       `json:"time"`
	Description         string       `json:"description"`
	Location            string       `json:"location"`
	LocationCoordinates *Coordinates `json:"locationCoordinates,omitempty"`
	CoverPhoto          string       `json:"coverPhoto,omitempty"`
	VolunteerCategories []string     `json:"volunteerCategories"`
	Canceled            bool         `json:"canceled,omitempty"`
	Tags                []string     `json:"tags,omitempty"`
	CurrentVolunteers   int          `json:"currentVolunteers"`
	MaxVolunteers       int          `json:"maxVolunteers"`
}

// Full reports whether the event has reached its volunteer capacity.
// Advisory only: submission is not re-gated on capacity.
func (e Event) Full() bool {
	return !e.Canceled && e.MaxVolunteers > 0 && e.CurrentVolunteers >= e.MaxVolunteers
}

// HasPosition reports whether the named position is open on this event.
func (e Event) HasPosition(position string) bool {
	for _, p := range e.VolunteerCategories {
		if p == position {
			return true
		}
	}
	return false
}

// Volunteer is an approved volunteer record. Created by the admin
// approval workflow; this application only reads it. Email is the
// identity key joined against the session user.
type Volunteer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	AssignedEvents []string `json:"assignedEvents"`
	Status         string   `json:"status"` // "active" or "inactive"
}

// AssignedTo reports whether the volunteer is assigned to the given event.
// A nil assignment list is an empty set, not an error.
func (v Volunteer) AssignedTo(eventID string) bool {
	for _, id := range v.AssignedEvents {
		if id == eventID {
			return true
		}
	}
	return false
}

// PendingVolunteerRequest is an append-only registration request record.
// This application creates them with status "pending"; the admin workflow
// transitions them to approved or rejected elsewhere.
type PendingVolunteerRequest struct {
	ID             string        `json:"id"`
	EventID        string        `json:"eventId"`
	EventTitle     string        `json:"eventTitle"`
	VolunteerName  string        `json:"volunteerName"`
	VolunteerEmail string        `json:"volunteerEmail"`
	Status         RequestStatus `json:"status"`
	Timestamp      int64         `json:"timestamp"`
	Position       string        `json:"position"`
}

// User is the authenticated session identity.
type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// FullName returns the display name used on registration requests.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
