package alarm

import "strconv"

// Event is the kind of a logged alarm event. Values match the numeric codes
// stored in the alarm log documents.
type Event int

// Logged alarm events.
const (
	EventOff Event = iota
	EventOn
	EventAcked
	EventBlocked
	EventUnBlocked
	EventAckedLocally
	EventCause
	EventReset
	EventPagingSentToUser
	EventPagingUserSMSReceived
	EventPagingSentSMSToUser
	EventPagingSentMailToUser
	EventPagingSentPushToUser
	EventPagingUserPushReceived
	EventPagingUserPushRead
)

//nolint:gochecknoglobals // Lookup table for String.
var eventNames = [...]string{
	EventOff:                    "Off",
	EventOn:                     "On",
	EventAcked:                  "Acked",
	EventBlocked:                "Blocked",
	EventUnBlocked:              "UnBlocked",
	EventAckedLocally:           "AckedLocally",
	EventCause:                  "Cause",
	EventReset:                  "Reset",
	EventPagingSentToUser:       "PagingSentToUser",
	EventPagingUserSMSReceived:  "PagingUserSMSReceived",
	EventPagingSentSMSToUser:    "PagingSentSMSToUser",
	EventPagingSentMailToUser:   "PagingSentMailToUser",
	EventPagingSentPushToUser:   "PagingSentPushToUser",
	EventPagingUserPushReceived: "PagingUserPushReceived",
	EventPagingUserPushRead:     "PagingUserPushRead",
}

// String returns the event name, or its numeric code for unknown values.
func (e Event) String() string {
	if !e.Valid() {
		return "Event(" + strconv.Itoa(int(e)) + ")"
	}

	return eventNames[e]
}

// Valid reports whether e is a known event.
func (e Event) Valid() bool {
	return e >= EventOff && e <= EventPagingUserPushRead
}

// IsPaging reports whether e belongs to the paging family
// (PagingSentToUser through PagingUserPushRead).
func (e Event) IsPaging() bool {
	return e >= EventPagingSentToUser && e <= EventPagingUserPushRead
}
