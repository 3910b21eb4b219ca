package service

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/akoskissak/student-canteen/canteen/internal/model"
	"github.com/akoskissak/student-canteen/canteen/internal/repository"
	"github.com/akoskissak/student-canteen/pkg/kafka"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	enqueuer kafka.Enqueuer

	now func() time.Time
	loc *time.Location

	// mu serialises every check-then-write so capacity and overlap checks see a stable store.
	mu sync.Mutex
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocation sets the time zone that decides what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewService(repo repository.Repository, enqueuer kafka.Enqueuer, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log.Named("service"),
		repo:     repo,
		enqueuer: enqueuer,
		now:      time.Now,
		loc:      time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.DateOf(s.now().In(s.loc))
}

// publish never fails the caller: the write it reports on has already happened.
func (s *Service) publish(topic, key string, event any) {
	if err := s.enqueuer.Enqueue(topic, key, event); err != nil {
		s.log.Warn("publish event",
			zap.String("topic", topic),
			zap.String("key", key),
			zap.Error(err))
	}
}

func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear store")
	}
	s.log.Info("store cleared")
	return nil
}
