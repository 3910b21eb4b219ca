package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
	"github.com/akoskissak/student-canteen/canteen/internal/model"
)

func (s *Service) CreateStudent(ctx context.Context, req model.CreateStudentRequest) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.repo.GetStudentByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return model.Student{}, errs.ErrEmailTaken
	case !errors.Is(err, errs.ErrStudentNotFound):
		return model.Student{}, errors.Wrap(err, "lookup student by email")
	}

	st, err := s.repo.CreateStudent(ctx, model.Student{
		Name:    req.Name,
		Email:   req.Email,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		return model.Student{}, errors.Wrap(err, "create student")
	}
	s.log.Debug("student created", zap.String("id", st.ID), zap.Bool("admin", st.IsAdmin))
	return st, nil
}

func (s *Service) GetStudent(ctx context.Context, id string) (model.Student, error) {
	st, err := s.repo.GetStudent(ctx, id)
	if err != nil {
		return model.Student{}, errors.Wrapf(err, "student %s", id)
	}
	return st, nil
}

func (s *Service) requireAdmin(ctx context.Context, studentID string) error {
	st, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if !st.IsAdmin {
		return errs.ErrNotAdmin
	}
	return nil
}
