package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
	"github.com/akoskissak/student-canteen/canteen/internal/model"
	"github.com/akoskissak/student-canteen/pkg/kafka"
	"github.com/akoskissak/student-canteen/pkg/metrics"
)

func rejected(reason string, err error) error {
	metrics.ReservationsRejected.WithLabelValues(reason).Inc()
	return err
}

// CreateReservation books a slot. Checks run in a fixed order and the first failure wins.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	if req.Date.Before(s.today()) {
		return model.Reservation{}, rejected("past_date", errs.ErrPastDate)
	}
	if !model.ValidDuration(req.Duration) {
		return model.Reservation{}, rejected("duration", errs.ErrInvalidDuration)
	}
	if !model.SlotAligned(req.Time) {
		return model.Reservation{}, rejected("alignment", errs.ErrUnalignedSlot)
	}

	r, err := s.book(ctx, req)
	if err != nil {
		return model.Reservation{}, err
	}
	metrics.ReservationsCreated.Inc()
	s.log.Debug("reservation created",
		zap.String("id", r.ID),
		zap.String("student", r.StudentID),
		zap.String("canteen", r.CanteenID),
		zap.Stringer("date", r.Date),
		zap.Stringer("time", r.Time))

	s.publish(kafka.ReservationTopic, r.ID, s.reservationEvent(kafka.EventReservationCreated, r))
	return r, nil
}

// book runs the store-dependent checks and the insert under the writer lock.
func (s *Service) book(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.GetStudent(ctx, req.StudentID); err != nil {
		return model.Reservation{}, err
	}
	canteen, err := s.GetCanteen(ctx, req.CanteenID)
	if err != nil {
		return model.Reservation{}, err
	}

	want := model.NewInterval(req.Date, req.Time, req.Duration)

	own, err := s.repo.ListStudentReservations(ctx, req.StudentID, model.StatusActive)
	if err != nil {
		return model.Reservation{}, errors.Wrapf(err, "reservations of student %s", req.StudentID)
	}
	for _, r := range own {
		if r.IsActive() && r.Interval().Overlaps(want) {
			return model.Reservation{}, rejected("overlap",
				errors.Wrapf(errs.ErrOverlap, "reservation on %s at %s", r.Date, r.Time))
		}
	}

	if !canteen.OpenFor(req.Time, req.Duration) {
		return model.Reservation{}, rejected("closed", errs.ErrOutsideWorkingHours)
	}

	booked, err := s.repo.ListCanteenReservations(ctx, canteen.ID, req.Date, model.StatusActive)
	if err != nil {
		return model.Reservation{}, errors.Wrapf(err, "reservations of canteen %s on %s", canteen.ID, req.Date)
	}
	if countOverlapping(booked, want) >= canteen.Capacity {
		return model.Reservation{}, rejected("capacity",
			errors.Wrapf(errs.ErrCapacityExceeded, "%s at %s on %s", canteen.Name, req.Time, req.Date))
	}

	r, err := s.repo.CreateReservation(ctx, model.Reservation{
		StudentID: req.StudentID,
		CanteenID: req.CanteenID,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
		Status:    model.StatusActive,
	})
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "create reservation")
	}
	return r, nil
}

func (s *Service) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	r, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return model.Reservation{}, errors.Wrapf(err, "reservation %s", id)
	}
	return r, nil
}

// CancelReservation lets the owning student cancel an active reservation.
func (s *Service) CancelReservation(ctx context.Context, reservationID, studentID string) (model.Reservation, error) {
	r, err := s.cancel(ctx, reservationID, studentID)
	if err != nil {
		return model.Reservation{}, err
	}
	metrics.ReservationsCancelled.Inc()
	s.log.Debug("reservation cancelled", zap.String("id", r.ID), zap.String("student", studentID))

	s.publish(kafka.ReservationTopic, r.ID, s.reservationEvent(kafka.EventReservationCancelled, r))
	return r, nil
}

func (s *Service) cancel(ctx context.Context, reservationID, studentID string) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.GetReservation(ctx, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	if r.StudentID != studentID {
		return model.Reservation{}, errs.ErrNotOwner
	}
	if err := r.Cancel(); err != nil {
		return model.Reservation{}, err
	}

	r, err = s.repo.UpdateReservationStatus(ctx, r.ID, r.Status)
	if err != nil {
		return model.Reservation{}, errors.Wrapf(err, "cancel reservation %s", reservationID)
	}
	return r, nil
}

func (s *Service) reservationEvent(t kafka.EventType, r model.Reservation) kafka.ReservationEvent {
	return kafka.ReservationEvent{
		Timestamp:     s.now().UTC(),
		EventType:     t,
		ReservationID: r.ID,
		StudentID:     r.StudentID,
		CanteenID:     r.CanteenID,
		Date:          r.Date.String(),
		Time:          r.Time.String(),
		Duration:      r.Duration,
	}
}
