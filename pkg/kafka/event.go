package kafka

import "time"

type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationCancelled EventType = "reservation.cancelled"
	EventCanteenDeleted       EventType = "canteen.deleted"
)

type ReservationEvent struct {
	Timestamp     time.Time `json:"timestamp"`
	EventType     EventType `json:"eventType"`
	ReservationID string    `json:"reservationId"`
	StudentID     string    `json:"studentId"`
	CanteenID     string    `json:"canteenId"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Duration      int       `json:"duration"`
}

type CanteenEvent struct {
	Timestamp           time.Time `json:"timestamp"`
	EventType           EventType `json:"eventType"`
	CanteenID           string    `json:"canteenId"`
	AdminID             string    `json:"adminId"`
	RemovedReservations int       `json:"removedReservations"`
}
