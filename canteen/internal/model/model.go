package model

import (
	"fmt"
	"strings"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
)

type Student struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	IsAdmin bool   `json:"isAdmin" db:"is_admin"`
}

type CreateStudentRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	IsAdmin bool   `json:"isAdmin"`
}

type WorkingHour struct {
	Meal string `json:"meal" validate:"required"`
	From Clock  `json:"from"`
	To   Clock  `json:"to"`
}

// Contains reports whether t falls in [From, To).
func (w WorkingHour) Contains(t Clock) bool {
	return w.From <= t && t < w.To
}

// Covers reports whether [start, start+minutes) lies entirely inside the window.
func (w WorkingHour) Covers(start Clock, minutes int) bool {
	return w.From <= start && start.Add(minutes) <= w.To
}

type Canteen struct {
	ID           string        `json:"id" db:"id"`
	Name         string        `json:"name" db:"name"`
	Location     string        `json:"location" db:"location"`
	Capacity     int           `json:"capacity" db:"capacity"`
	WorkingHours []WorkingHour `json:"workingHours" db:"working_hours"`
}

// MealAt returns the first working-hour window containing t.
func (c Canteen) MealAt(t Clock) (WorkingHour, bool) {
	for _, w := range c.WorkingHours {
		if w.Contains(t) {
			return w, true
		}
	}
	return WorkingHour{}, false
}

// OpenFor reports whether some window covers the whole slot.
func (c Canteen) OpenFor(start Clock, minutes int) bool {
	for _, w := range c.WorkingHours {
		if w.Covers(start, minutes) {
			return true
		}
	}
	return false
}

type CreateCanteenRequest struct {
	Name         string        `json:"name" validate:"required"`
	Location     string        `json:"location" validate:"required"`
	Capacity     int           `json:"capacity" validate:"min=1"`
	WorkingHours []WorkingHour `json:"workingHours" validate:"required,dive"`
}

// CanteenUpdate holds the fields of a partial canteen update; nil means unchanged.
type CanteenUpdate struct {
	Name         *string       `json:"name,omitempty" validate:"omitempty,min=1"`
	Location     *string       `json:"location,omitempty" validate:"omitempty,min=1"`
	Capacity     *int          `json:"capacity,omitempty" validate:"omitempty,min=1"`
	WorkingHours []WorkingHour `json:"workingHours,omitempty" validate:"omitempty,dive"`
}

func (u CanteenUpdate) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.Capacity == nil && u.WorkingHours == nil
}

func (u CanteenUpdate) Apply(c Canteen) Canteen {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Location != nil {
		c.Location = *u.Location
	}
	if u.Capacity != nil {
		c.Capacity = *u.Capacity
	}
	if u.WorkingHours != nil {
		c.WorkingHours = append([]WorkingHour(nil), u.WorkingHours...)
	}
	return c
}

type Status uint8

const (
	StatusActive Status = iota + 1
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case StatusActive, StatusCancelled:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("unknown reservation status %d", uint8(s))
}

func (s *Status) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "active":
		*s = StatusActive
	case "cancelled":
		*s = StatusCancelled
	default:
		return fmt.Errorf("unknown reservation status %q", string(b))
	}
	return nil
}

var AllowedDurations = []int{30, 60}

func ValidDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// SlotAligned reports whether t starts on the hour or half hour.
func SlotAligned(t Clock) bool {
	return t.Minute() == 0 || t.Minute() == 30
}

type Reservation struct {
	ID        string `json:"id" db:"id"`
	StudentID string `json:"studentId" db:"student_id"`
	CanteenID string `json:"canteenId" db:"canteen_id"`
	Date      Date   `json:"date" db:"date"`
	Time      Clock  `json:"time" db:"start_minute"`
	Duration  int    `json:"duration" db:"duration"`
	Status    Status `json:"status" db:"status"`
}

func (r Reservation) Interval() Interval {
	return NewInterval(r.Date, r.Time, r.Duration)
}

func (r Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// Cancel moves an active reservation to Cancelled. It is the only status transition.
func (r *Reservation) Cancel() error {
	if r.Status != StatusActive {
		return errs.ErrAlreadyCancelled
	}
	r.Status = StatusCancelled
	return nil
}

type CreateReservationRequest struct {
	StudentID string `json:"studentId"`
	CanteenID string `json:"canteenId"`
	Date      Date   `json:"date"`
	Time      Clock  `json:"time"`
	Duration  int    `json:"duration"`
}

type CapacityQuery struct {
	StartDate Date
	EndDate   Date
	StartTime Clock
	EndTime   Clock
	Duration  int
}

type Slot struct {
	Date              Date   `json:"date"`
	Meal              string `json:"meal"`
	StartTime         Clock  `json:"startTime"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

type CanteenCapacity struct {
	CanteenID string `json:"canteenId"`
	Slots     []Slot `json:"slots"`
}
