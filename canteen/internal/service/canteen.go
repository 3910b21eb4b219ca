package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
	"github.com/akoskissak/student-canteen/canteen/internal/model"
	"github.com/akoskissak/student-canteen/pkg/kafka"
)

func validateWorkingHours(hours []model.WorkingHour) error {
	for _, w := range hours {
		if w.From >= w.To {
			return errors.Wrapf(errs.ErrInvalidWorkingHours, "%s %s-%s", w.Meal, w.From, w.To)
		}
	}
	return nil
}

func (s *Service) CreateCanteen(ctx context.Context, adminID string, req model.CreateCanteenRequest) (model.Canteen, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return model.Canteen{}, err
	}
	if err := validateWorkingHours(req.WorkingHours); err != nil {
		return model.Canteen{}, err
	}

	c, err := s.repo.CreateCanteen(ctx, model.Canteen{
		Name:         req.Name,
		Location:     req.Location,
		Capacity:     req.Capacity,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		return model.Canteen{}, errors.Wrap(err, "create canteen")
	}
	s.log.Info("canteen created", zap.String("id", c.ID), zap.String("admin", adminID))
	return c, nil
}

func (s *Service) GetCanteen(ctx context.Context, id string) (model.Canteen, error) {
	c, err := s.repo.GetCanteen(ctx, id)
	if err != nil {
		return model.Canteen{}, errors.Wrapf(err, "canteen %s", id)
	}
	return c, nil
}

func (s *Service) ListCanteens(ctx context.Context) ([]model.Canteen, error) {
	list, err := s.repo.ListCanteens(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list canteens")
	}
	return list, nil
}

func (s *Service) UpdateCanteen(ctx context.Context, adminID, canteenID string, upd model.CanteenUpdate) (model.Canteen, error) {
	if upd.IsEmpty() {
		return model.Canteen{}, errs.ErrNothingToUpdate
	}
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return model.Canteen{}, err
	}
	if upd.WorkingHours != nil {
		if err := validateWorkingHours(upd.WorkingHours); err != nil {
			return model.Canteen{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.GetCanteen(ctx, canteenID)
	if err != nil {
		return model.Canteen{}, err
	}
	c, err := s.repo.UpdateCanteen(ctx, upd.Apply(current))
	if err != nil {
		return model.Canteen{}, errors.Wrapf(err, "update canteen %s", canteenID)
	}
	s.log.Info("canteen updated", zap.String("id", c.ID), zap.String("admin", adminID))
	return c, nil
}

// DeleteCanteen removes the canteen and every reservation that references it, whatever its status.
func (s *Service) DeleteCanteen(ctx context.Context, adminID, canteenID string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	s.mu.Lock()
	removed, err := s.repo.DeleteCanteenCascade(ctx, canteenID)
	s.mu.Unlock()
	if err != nil {
		return errors.Wrapf(err, "delete canteen %s", canteenID)
	}
	s.log.Info("canteen deleted",
		zap.String("id", canteenID),
		zap.String("admin", adminID),
		zap.Int("removedReservations", removed))

	s.publish(kafka.CanteenTopic, canteenID, kafka.CanteenEvent{
		Timestamp:           s.now().UTC(),
		EventType:           kafka.EventCanteenDeleted,
		CanteenID:           canteenID,
		AdminID:             adminID,
		RemovedReservations: removed,
	})
	return nil
}
