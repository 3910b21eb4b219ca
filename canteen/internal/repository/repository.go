package repository

import (
	"context"

	"github.com/akoskissak/student-canteen/canteen/internal/model"
)

// Repository is the entity store. Implementations assign identifiers on create
// and report missing entities with the errs.Err*NotFound sentinels.
type Repository interface {
	CreateStudent(ctx context.Context, s model.Student) (model.Student, error)
	GetStudent(ctx context.Context, id string) (model.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (model.Student, error)

	CreateCanteen(ctx context.Context, c model.Canteen) (model.Canteen, error)
	GetCanteen(ctx context.Context, id string) (model.Canteen, error)
	ListCanteens(ctx context.Context) ([]model.Canteen, error)
	UpdateCanteen(ctx context.Context, c model.Canteen) (model.Canteen, error)
	// DeleteCanteenCascade removes the canteen together with all of its reservations
	// and reports how many reservations went with it.
	DeleteCanteenCascade(ctx context.Context, id string) (int, error)

	CreateReservation(ctx context.Context, r model.Reservation) (model.Reservation, error)
	GetReservation(ctx context.Context, id string) (model.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status model.Status) (model.Reservation, error)
	ListStudentReservations(ctx context.Context, studentID string, status model.Status) ([]model.Reservation, error)
	ListCanteenReservations(ctx context.Context, canteenID string, date model.Date, status model.Status) ([]model.Reservation, error)

	Clear(ctx context.Context) error
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)
