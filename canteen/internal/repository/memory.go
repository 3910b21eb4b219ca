package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
	"github.com/akoskissak/student-canteen/canteen/internal/model"
)

// memory keeps every entity in maps. Values are copied in and out so callers
// never share state with the store.
type memory struct {
	mu  sync.RWMutex
	log *zap.Logger

	students     map[string]model.Student
	canteens     map[string]model.Canteen
	canteenOrder []string
	reservations map[string]model.Reservation
}

var _ Repository = (*memory)(nil)

func NewMemoryRepository(log *zap.Logger) *memory {
	r := &memory{log: log.Named("repo")}
	r.reset()
	return r
}

func (r *memory) reset() {
	r.students = make(map[string]model.Student)
	r.canteens = make(map[string]model.Canteen)
	r.canteenOrder = nil
	r.reservations = make(map[string]model.Reservation)
}

func (r *memory) CreateStudent(_ context.Context, s model.Student) (model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.students {
		if existing.Email == s.Email {
			return model.Student{}, errs.ErrEmailTaken
		}
	}
	s.ID = uuid.NewString()
	r.students[s.ID] = s
	return s, nil
}

func (r *memory) GetStudent(_ context.Context, id string) (model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.students[id]
	if !ok {
		return model.Student{}, errs.ErrStudentNotFound
	}
	return s, nil
}

func (r *memory) GetStudentByEmail(_ context.Context, email string) (model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.students {
		if s.Email == email {
			return s, nil
		}
	}
	return model.Student{}, errs.ErrStudentNotFound
}

func (r *memory) CreateCanteen(_ context.Context, c model.Canteen) (model.Canteen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uuid.NewString()
	c = copyCanteen(c)
	r.canteens[c.ID] = c
	r.canteenOrder = append(r.canteenOrder, c.ID)
	return copyCanteen(c), nil
}

func (r *memory) GetCanteen(_ context.Context, id string) (model.Canteen, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.canteens[id]
	if !ok {
		return model.Canteen{}, errs.ErrCanteenNotFound
	}
	return copyCanteen(c), nil
}

func (r *memory) ListCanteens(_ context.Context) ([]model.Canteen, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]model.Canteen, 0, len(r.canteenOrder))
	for _, id := range r.canteenOrder {
		items = append(items, copyCanteen(r.canteens[id]))
	}
	return items, nil
}

func (r *memory) UpdateCanteen(_ context.Context, c model.Canteen) (model.Canteen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.canteens[c.ID]; !ok {
		return model.Canteen{}, errs.ErrCanteenNotFound
	}
	r.canteens[c.ID] = copyCanteen(c)
	return copyCanteen(c), nil
}

func (r *memory) DeleteCanteenCascade(_ context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.canteens[id]; !ok {
		return 0, errs.ErrCanteenNotFound
	}
	delete(r.canteens, id)
	for i, cid := range r.canteenOrder {
		if cid == id {
			r.canteenOrder = append(r.canteenOrder[:i], r.canteenOrder[i+1:]...)
			break
		}
	}
	n := 0
	for rid, res := range r.reservations {
		if res.CanteenID == id {
			delete(r.reservations, rid)
			n++
		}
	}
	return n, nil
}

func (r *memory) CreateReservation(_ context.Context, res model.Reservation) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.ID = uuid.NewString()
	r.reservations[res.ID] = res
	return res, nil
}

func (r *memory) GetReservation(_ context.Context, id string) (model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.reservations[id]
	if !ok {
		return model.Reservation{}, errs.ErrReservationNotFound
	}
	return res, nil
}

func (r *memory) UpdateReservationStatus(_ context.Context, id string, status model.Status) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return model.Reservation{}, errs.ErrReservationNotFound
	}
	res.Status = status
	r.reservations[id] = res
	return res, nil
}

func (r *memory) ListStudentReservations(_ context.Context, studentID string, status model.Status) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []model.Reservation
	for _, res := range r.reservations {
		if res.StudentID == studentID && matchStatus(res, status) {
			items = append(items, res)
		}
	}
	return items, nil
}

func (r *memory) ListCanteenReservations(_ context.Context, canteenID string, date model.Date, status model.Status) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []model.Reservation
	for _, res := range r.reservations {
		if res.CanteenID == canteenID && res.Date.Equal(date) && matchStatus(res, status) {
			items = append(items, res)
		}
	}
	return items, nil
}

func (r *memory) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
	r.log.Debug("store cleared")
	return nil
}

// matchStatus treats the zero status as "any".
func matchStatus(res model.Reservation, status model.Status) bool {
	return status == 0 || res.Status == status
}

func copyCanteen(c model.Canteen) model.Canteen {
	hours := make([]model.WorkingHour, len(c.WorkingHours))
	copy(hours, c.WorkingHours)
	c.WorkingHours = hours
	return c
}
