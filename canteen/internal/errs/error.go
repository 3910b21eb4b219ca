package errs

import (
	"errors"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
)

// Error is a business-rule failure of a known kind.
type Error struct {
	kind Kind
	msg  string
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

var (
	ErrPastDate            = New(KindValidation, "reservations in the past are not allowed")
	ErrInvalidDuration     = New(KindValidation, "duration must be 30 or 60 minutes")
	ErrUnalignedSlot       = New(KindValidation, "reservation must start on the hour or half hour")
	ErrInvalidRange        = New(KindValidation, "invalid range")
	ErrInvalidWorkingHours = New(KindValidation, "working hour window must end after it starts")
	ErrNothingToUpdate     = New(KindValidation, "no fields to update")
	ErrStudentIDRequired   = New(KindValidation, "studentId header is required")

	ErrStudentNotFound     = New(KindNotFound, "student not found")
	ErrCanteenNotFound     = New(KindNotFound, "canteen not found")
	ErrReservationNotFound = New(KindNotFound, "reservation not found")

	ErrNotAdmin = New(KindForbidden, "only admin students can manage canteens")
	ErrNotOwner = New(KindForbidden, "cannot cancel another student's reservation")

	ErrEmailTaken          = New(KindConflict, "student with this email already exists")
	ErrOverlap             = New(KindConflict, "student already has an overlapping active reservation")
	ErrOutsideWorkingHours = New(KindConflict, "canteen not open at requested time")
	ErrCapacityExceeded    = New(KindConflict, "canteen capacity is full")
	ErrAlreadyCancelled    = New(KindConflict, "reservation is already cancelled")
)
