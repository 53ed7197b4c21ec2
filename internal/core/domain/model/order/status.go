package order

import (
	"fmt"

	"salesorders/internal/pkg/errs"
)

// Status is the lifecycle state of a sales order.
//
// Any listed status may be set from any other listed status; the lifecycle
// only restricts what can happen to an order while it sits in a status:
//
//	NEW, OPEN   editable, deletable
//	CANCELED    read-only, deletable
//	CLOSED      read-only, not deletable
//
// Status is persisted and exchanged over the API by its string value.
type Status string

const (
	// Unknown is the zero value. It is never persisted and stands for
	// "not supplied" on input, where it defaults to New.
	Unknown Status = ""

	New      Status = "NEW"
	Open     Status = "OPEN"
	Closed   Status = "CLOSED"
	Canceled Status = "CANCELED"
)

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		New:      {},
		Open:     {},
		Closed:   {},
		Canceled: {},
	}
}

// ParseStatus converts external input into a Status.
//
// Returns:
//   - (Unknown, nil) for an empty string
//   - the matching Status for NEW, OPEN, CLOSED, CANCELED
//   - ValueIsInvalidError for anything else (matching is case-sensitive)
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return Unknown, nil
	}

	status := Status(raw)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// Validate checks that the status is one of NEW, OPEN, CLOSED, CANCELED.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == Unknown {
		return "UNKNOWN"
	}
	return string(s)
}

// IsEditable reports whether orders in this status accept changes to their
// fields or items.
func (s Status) IsEditable() bool {
	return s != Closed && s != Canceled
}

// IsDeletable reports whether orders in this status may be deleted.
// Canceled orders can still be deleted; closed ones are kept.
func (s Status) IsDeletable() bool {
	return s != Closed
}
