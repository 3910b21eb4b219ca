package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
	"github.com/akoskissak/student-canteen/canteen/internal/model"
)

const (
	maxParallelCanteens = 8
	// maxRangeDays bounds a capacity query to one year of dates, both ends included.
	maxRangeDays = 366
)

func validateCapacityQuery(q model.CapacityQuery) error {
	if !model.ValidDuration(q.Duration) {
		return errs.ErrInvalidDuration
	}
	if q.StartDate.After(q.EndDate) {
		return errors.Wrap(errs.ErrInvalidRange, "startDate is after endDate")
	}
	if q.EndDate.After(q.StartDate.AddDays(maxRangeDays - 1)) {
		return errors.Wrapf(errs.ErrInvalidRange, "date range exceeds %d days", maxRangeDays)
	}
	if q.StartTime >= q.EndTime {
		return errors.Wrap(errs.ErrInvalidRange, "startTime must be before endTime")
	}
	return nil
}

// CapacityStatus reports free places per slot for every canteen that has at least one slot in the query window.
func (s *Service) CapacityStatus(ctx context.Context, q model.CapacityQuery) ([]model.CanteenCapacity, error) {
	if err := validateCapacityQuery(q); err != nil {
		return nil, err
	}
	canteens, err := s.ListCanteens(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]model.CanteenCapacity, len(canteens))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelCanteens)
	for i := range canteens {
		i := i
		g.Go(func() error {
			slots, err := s.slots(gCtx, canteens[i], q)
			if err != nil {
				return err
			}
			results[i] = model.CanteenCapacity{CanteenID: canteens[i].ID, Slots: slots}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]model.CanteenCapacity, 0, len(results))
	for _, r := range results {
		if len(r.Slots) > 0 {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) CanteenCapacity(ctx context.Context, canteenID string, q model.CapacityQuery) (model.CanteenCapacity, error) {
	if err := validateCapacityQuery(q); err != nil {
		return model.CanteenCapacity{}, err
	}
	c, err := s.GetCanteen(ctx, canteenID)
	if err != nil {
		return model.CanteenCapacity{}, err
	}
	slots, err := s.slots(ctx, c, q)
	if err != nil {
		return model.CanteenCapacity{}, err
	}
	return model.CanteenCapacity{CanteenID: c.ID, Slots: slots}, nil
}

func (s *Service) slots(ctx context.Context, c model.Canteen, q model.CapacityQuery) ([]model.Slot, error) {
	slots := make([]model.Slot, 0)
	for day := q.StartDate; !day.After(q.EndDate); day = day.AddDays(1) {
		active, err := s.repo.ListCanteenReservations(ctx, c.ID, day, model.StatusActive)
		if err != nil {
			return nil, errors.Wrapf(err, "reservations of canteen %s on %s", c.ID, day)
		}
		for start := q.StartTime; start < q.EndTime; start = start.Add(q.Duration) {
			w, ok := c.MealAt(start)
			if !ok {
				continue
			}
			remaining := c.Capacity - countOverlapping(active, model.NewInterval(day, start, q.Duration))
			if remaining < 0 {
				remaining = 0
			}
			slots = append(slots, model.Slot{
				Date:              day,
				Meal:              w.Meal,
				StartTime:         start,
				RemainingCapacity: remaining,
			})
		}
	}
	return slots, nil
}

func countOverlapping(reservations []model.Reservation, slot model.Interval) int {
	n := 0
	for _, r := range reservations {
		if r.IsActive() && r.Interval().Overlaps(slot) {
			n++
		}
	}
	return n
}
