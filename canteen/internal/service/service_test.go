package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
	"github.com/akoskissak/student-canteen/canteen/internal/model"
	"github.com/akoskissak/student-canteen/canteen/internal/repository"
	"github.com/akoskissak/student-canteen/canteen/internal/service"
	"github.com/akoskissak/student-canteen/pkg/kafka"
)

var (
	now      = time.Date(2030, time.January, 1, 10, 0, 0, 0, time.UTC)
	today    = model.DateOf(now)
	tomorrow = today.AddDays(1)
)

type fixture struct {
	ctx   context.Context
	svc   *service.Service
	admin model.Student
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, kafka.NopEnqueuer{})
}

func newFixtureWith(t *testing.T, q kafka.Enqueuer) *fixture {
	t.Helper()
	log := zap.NewExample().Named("test")
	repo := repository.NewMemoryRepository(log)
	svc := service.NewService(repo, q, log,
		service.WithClock(func() time.Time { return now }))

	f := &fixture{ctx: context.Background(), svc: svc}
	f.admin = f.student(t, "admin", true)
	return f
}

func (f *fixture) student(t *testing.T, name string, admin bool) model.Student {
	t.Helper()
	st, err := f.svc.CreateStudent(f.ctx, model.CreateStudentRequest{
		Name:    name,
		Email:   name + "@uni.test",
		IsAdmin: admin,
	})
	require.NoError(t, err)
	return st
}

func (f *fixture) canteen(t *testing.T, capacity int) model.Canteen {
	t.Helper()
	c, err := f.svc.CreateCanteen(f.ctx, f.admin.ID, model.CreateCanteenRequest{
		Name:     "Main",
		Location: "Campus",
		Capacity: capacity,
		WorkingHours: []model.WorkingHour{
			{Meal: "breakfast", From: model.NewClock(8, 0), To: model.NewClock(10, 0)},
			{Meal: "lunch", From: model.NewClock(12, 0), To: model.NewClock(15, 0)},
		},
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) book(studentID, canteenID string, date model.Date, at model.Clock, duration int) (model.Reservation, error) {
	return f.svc.CreateReservation(f.ctx, model.CreateReservationRequest{
		StudentID: studentID,
		CanteenID: canteenID,
		Date:      date,
		Time:      at,
		Duration:  duration,
	})
}

func TestService_CreateStudent(t *testing.T) {
	f := newFixture(t)

	st := f.student(t, "ana", false)
	require.NotEmpty(t, st.ID)
	require.False(t, st.IsAdmin)

	got, err := f.svc.GetStudent(f.ctx, st.ID)
	require.NoError(t, err)
	require.Equal(t, st, got)

	_, err = f.svc.CreateStudent(f.ctx, model.CreateStudentRequest{Name: "other", Email: "ana@uni.test"})
	require.ErrorIs(t, err, errs.ErrEmailTaken)

	_, err = f.svc.GetStudent(f.ctx, "missing")
	require.ErrorIs(t, err, errs.ErrStudentNotFound)
}

func TestService_CanteenAdminRights(t *testing.T) {
	f := newFixture(t)
	st := f.student(t, "ana", false)
	req := model.CreateCanteenRequest{
		Name:         "Side",
		Location:     "North",
		Capacity:     5,
		WorkingHours: []model.WorkingHour{{Meal: "lunch", From: model.NewClock(12, 0), To: model.NewClock(14, 0)}},
	}

	_, err := f.svc.CreateCanteen(f.ctx, st.ID, req)
	require.ErrorIs(t, err, errs.ErrNotAdmin)
	require.Equal(t, errs.KindForbidden, errs.KindOf(err))

	_, err = f.svc.CreateCanteen(f.ctx, "ghost", req)
	require.ErrorIs(t, err, errs.ErrStudentNotFound)

	req.WorkingHours = []model.WorkingHour{{Meal: "lunch", From: model.NewClock(14, 0), To: model.NewClock(12, 0)}}
	_, err = f.svc.CreateCanteen(f.ctx, f.admin.ID, req)
	require.ErrorIs(t, err, errs.ErrInvalidWorkingHours)

	c := f.canteen(t, 5)
	require.ErrorIs(t, f.svc.DeleteCanteen(f.ctx, st.ID, c.ID), errs.ErrNotAdmin)
	require.ErrorIs(t, f.svc.DeleteCanteen(f.ctx, f.admin.ID, "missing"), errs.ErrCanteenNotFound)

	list, err := f.svc.ListCanteens(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, c, list[0])
}

func TestService_UpdateCanteen(t *testing.T) {
	f := newFixture(t)
	c := f.canteen(t, 5)
	name := "Renamed"
	capacity := 7

	_, err := f.svc.UpdateCanteen(f.ctx, "ghost", c.ID, model.CanteenUpdate{})
	require.ErrorIs(t, err, errs.ErrNothingToUpdate)

	_, err = f.svc.UpdateCanteen(f.ctx, f.admin.ID, "missing", model.CanteenUpdate{Name: &name})
	require.ErrorIs(t, err, errs.ErrCanteenNotFound)

	updated, err := f.svc.UpdateCanteen(f.ctx, f.admin.ID, c.ID, model.CanteenUpdate{Name: &name, Capacity: &capacity})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, 7, updated.Capacity)
	require.Equal(t, c.Location, updated.Location)
	require.Equal(t, c.WorkingHours, updated.WorkingHours)

	got, err := f.svc.GetCanteen(f.ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestService_CreateReservation_Rejections(t *testing.T) {
	f := newFixture(t)
	st := f.student(t, "ana", false)
	c := f.canteen(t, 5)

	tests := []struct {
		name      string
		studentID string
		canteenID string
		date      model.Date
		at        model.Clock
		duration  int
		wantErr   error
		wantKind  errs.Kind
	}{
		{
			name:      "past date wins over every other problem",
			studentID: "ghost",
			canteenID: "ghost",
			date:      today.AddDays(-1),
			at:        model.NewClock(12, 15),
			duration:  45,
			wantErr:   errs.ErrPastDate,
			wantKind:  errs.KindValidation,
		},
		{
			name:      "duration",
			studentID: st.ID,
			canteenID: c.ID,
			date:      tomorrow,
			at:        model.NewClock(12, 0),
			duration:  45,
			wantErr:   errs.ErrInvalidDuration,
			wantKind:  errs.KindValidation,
		},
		{
			name:      "unaligned start",
			studentID: st.ID,
			canteenID: c.ID,
			date:      tomorrow,
			at:        model.NewClock(12, 15),
			duration:  30,
			wantErr:   errs.ErrUnalignedSlot,
			wantKind:  errs.KindValidation,
		},
		{
			name:      "unknown student",
			studentID: "ghost",
			canteenID: c.ID,
			date:      tomorrow,
			at:        model.NewClock(12, 0),
			duration:  30,
			wantErr:   errs.ErrStudentNotFound,
			wantKind:  errs.KindNotFound,
		},
		{
			name:      "unknown canteen",
			studentID: st.ID,
			canteenID: "ghost",
			date:      tomorrow,
			at:        model.NewClock(12, 0),
			duration:  30,
			wantErr:   errs.ErrCanteenNotFound,
			wantKind:  errs.KindNotFound,
		},
		{
			name:      "after the last window",
			studentID: st.ID,
			canteenID: c.ID,
			date:      tomorrow,
			at:        model.NewClock(20, 0),
			duration:  30,
			wantErr:   errs.ErrOutsideWorkingHours,
			wantKind:  errs.KindConflict,
		},
		{
			name:      "runs past closing",
			studentID: st.ID,
			canteenID: c.ID,
			date:      tomorrow,
			at:        model.NewClock(14, 30),
			duration:  60,
			wantErr:   errs.ErrOutsideWorkingHours,
			wantKind:  errs.KindConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.book(tt.studentID, tt.canteenID, tt.date, tt.at, tt.duration)
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, tt.wantKind, errs.KindOf(err))
		})
	}

	_, err := f.book(st.ID, c.ID, today, model.NewClock(12, 0), 30)
	require.NoError(t, err, "today is not in the past")
}

func TestService_CreateReservation_Capacity(t *testing.T) {
	f := newFixture(t)
	c := f.canteen(t, 20)

	for i := 0; i < 20; i++ {
		st := f.student(t, fmt.Sprintf("s%02d", i), false)
		r, err := f.book(st.ID, c.ID, tomorrow, model.NewClock(12, 0), 30)
		require.NoError(t, err)
		require.Equal(t, model.StatusActive, r.Status)
	}

	late := f.student(t, "late", false)
	_, err := f.book(late.ID, c.ID, tomorrow, model.NewClock(12, 0), 30)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.Equal(t, errs.KindConflict, errs.KindOf(err))

	// a 60 minute booking starting half an hour earlier still collides with the full slot
	_, err = f.book(late.ID, c.ID, tomorrow, model.NewClock(11, 30), 60)
	require.ErrorIs(t, err, errs.ErrOutsideWorkingHours)
	_, err = f.book(late.ID, c.ID, tomorrow, model.NewClock(12, 0), 60)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)

	_, err = f.book(late.ID, c.ID, tomorrow, model.NewClock(12, 30), 30)
	require.NoError(t, err)
	_, err = f.book(late.ID, c.ID, tomorrow.AddDays(1), model.NewClock(12, 0), 30)
	require.NoError(t, err)
}

func TestService_CreateReservation_ConcurrentCapacity(t *testing.T) {
	f := newFixture(t)
	c := f.canteen(t, 20)

	students := make([]model.Student, 50)
	for i := range students {
		students[i] = f.student(t, fmt.Sprintf("c%02d", i), false)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		refused int
	)
	for _, st := range students {
		st := st
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.book(st.ID, c.ID, tomorrow, model.NewClock(13, 0), 30)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errs.KindOf(err) == errs.KindConflict {
				refused++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 20, ok)
	require.Equal(t, 30, refused)
}

func TestService_CreateReservation_StudentOverlap(t *testing.T) {
	f := newFixture(t)
	c := f.canteen(t, 5)
	other, err := f.svc.CreateCanteen(f.ctx, f.admin.ID, model.CreateCanteenRequest{
		Name:         "Other",
		Location:     "South",
		Capacity:     5,
		WorkingHours: []model.WorkingHour{{Meal: "lunch", From: model.NewClock(11, 0), To: model.NewClock(16, 0)}},
	})
	require.NoError(t, err)
	st := f.student(t, "ana", false)

	first, err := f.book(st.ID, c.ID, tomorrow, model.NewClock(12, 0), 60)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = f.book(st.ID, other.ID, tomorrow, model.NewClock(12, 30), 30)
		require.ErrorIs(t, err, errs.ErrOverlap)
		require.Contains(t, err.Error(), tomorrow.String())
		require.Contains(t, err.Error(), "12:00")
	}

	_, err = f.book(st.ID, other.ID, tomorrow, model.NewClock(13, 0), 30)
	require.NoError(t, err, "back-to-back reservations do not overlap")

	_, err = f.svc.CancelReservation(f.ctx, first.ID, st.ID)
	require.NoError(t, err)
	_, err = f.book(st.ID, other.ID, tomorrow, model.NewClock(12, 30), 30)
	require.NoError(t, err, "cancelled reservations no longer block")
}

func TestService_CreateReservation_BoundaryAdjacent(t *testing.T) {
	f := newFixture(t)
	c := f.canteen(t, 1)
	a := f.student(t, "a", false)
	b := f.student(t, "b", false)

	_, err := f.book(a.ID, c.ID, tomorrow, model.NewClock(13, 0), 30)
	require.NoError(t, err)
	_, err = f.book(b.ID, c.ID, tomorrow, model.NewClock(13, 30), 30)
	require.NoError(t, err)
}

func TestService_CancelReservation(t *testing.T) {
	f := newFixture(t)
	c := f.canteen(t, 5)
	owner := f.student(t, "owner", false)
	stranger := f.student(t, "stranger", false)

	r, err := f.book(owner.ID, c.ID, tomorrow, model.NewClock(12, 0), 30)
	require.NoError(t, err)

	_, err = f.svc.CancelReservation(f.ctx, "missing", owner.ID)
	require.ErrorIs(t, err, errs.ErrReservationNotFound)
	require.Equal(t, errs.KindNotFound, errs.KindOf(err))

	_, err = f.svc.CancelReservation(f.ctx, r.ID, stranger.ID)
	require.ErrorIs(t, err, errs.ErrNotOwner)
	require.Equal(t, errs.KindForbidden, errs.KindOf(err))

	cancelled, err := f.svc.CancelReservation(f.ctx, r.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, cancelled.Status)
	require.Equal(t, r.ID, cancelled.ID)

	_, err = f.svc.CancelReservation(f.ctx, r.ID, owner.ID)
	require.ErrorIs(t, err, errs.ErrAlreadyCancelled)

	got, err := f.svc.GetReservation(f.ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, got.Status)
}

func TestService_DeleteCanteen_Cascade(t *testing.T) {
	f := newFixture(t)
	c := f.canteen(t, 5)
	kept := f.canteen(t, 5)
	st := f.student(t, "ana", false)

	active, err := f.book(st.ID, c.ID, tomorrow, model.NewClock(12, 0), 30)
	require.NoError(t, err)
	cancelled, err := f.book(st.ID, c.ID, tomorrow, model.NewClock(13, 0), 30)
	require.NoError(t, err)
	_, err = f.svc.CancelReservation(f.ctx, cancelled.ID, st.ID)
	require.NoError(t, err)
	elsewhere, err := f.book(st.ID, kept.ID, tomorrow, model.NewClock(14, 0), 30)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteCanteen(f.ctx, f.admin.ID, c.ID))

	for _, id := range []string{active.ID, cancelled.ID} {
		_, err = f.svc.GetReservation(f.ctx, id)
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	}
	_, err = f.svc.GetReservation(f.ctx, elsewhere.ID)
	require.NoError(t, err)
	_, err = f.svc.GetCanteen(f.ctx, c.ID)
	require.ErrorIs(t, err, errs.ErrCanteenNotFound)
}

func TestService_Clear(t *testing.T) {
	f := newFixture(t)
	f.canteen(t, 5)

	require.NoError(t, f.svc.Clear(f.ctx))

	list, err := f.svc.ListCanteens(f.ctx)
	require.NoError(t, err)
	require.Empty(t, list)
	_, err = f.svc.GetStudent(f.ctx, f.admin.ID)
	require.ErrorIs(t, err, errs.ErrStudentNotFound)
}
