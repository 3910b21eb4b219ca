package handler

import (
	"context"

	"github.com/akoskissak/student-canteen/canteen/internal/model"
	"github.com/akoskissak/student-canteen/canteen/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CanteenService interface {
	CreateStudent(ctx context.Context, req model.CreateStudentRequest) (model.Student, error)
	GetStudent(ctx context.Context, id string) (model.Student, error)

	CreateCanteen(ctx context.Context, adminID string, req model.CreateCanteenRequest) (model.Canteen, error)
	GetCanteen(ctx context.Context, id string) (model.Canteen, error)
	ListCanteens(ctx context.Context) ([]model.Canteen, error)
	UpdateCanteen(ctx context.Context, adminID, canteenID string, upd model.CanteenUpdate) (model.Canteen, error)
	DeleteCanteen(ctx context.Context, adminID, canteenID string) error

	CapacityStatus(ctx context.Context, q model.CapacityQuery) ([]model.CanteenCapacity, error)
	CanteenCapacity(ctx context.Context, canteenID string, q model.CapacityQuery) (model.CanteenCapacity, error)

	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservation(ctx context.Context, id string) (model.Reservation, error)
	CancelReservation(ctx context.Context, reservationID, studentID string) (model.Reservation, error)

	Clear(ctx context.Context) error
}

var _ CanteenService = (*service.Service)(nil)
