package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "12:00", want: NewClock(12, 0)},
		{in: "07:30", want: NewClock(7, 30)},
		{in: "13:30:00", want: NewClock(13, 30)},
		{in: "24:00", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
		require.Equal(t, tt.want.String(), got.String())
	}
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2030-02-28")
	require.NoError(t, err)
	require.Equal(t, NewDate(2030, 2, 28), d)
	require.Equal(t, "2030-03-01", d.AddDays(1).String())
	require.True(t, d.Before(d.AddDays(1)))
	require.True(t, d.AddDays(1).After(d))

	_, err = ParseDate("28.02.2030")
	require.Error(t, err)

	var got struct {
		Date Date  `json:"date"`
		Time Clock `json:"time"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2030-01-02","time":"09:30"}`), &got))
	require.Equal(t, NewDate(2030, 1, 2), got.Date)
	require.Equal(t, NewClock(9, 30), got.Time)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"2030-01-02","time":"09:30"}`, string(b))
}

func TestInterval_Overlaps(t *testing.T) {
	day := NewDate(2030, 1, 2)
	base := NewInterval(day, NewClock(13, 0), 30)

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{name: "same", other: base, want: true},
		{name: "ends where other starts", other: NewInterval(day, NewClock(13, 30), 30), want: false},
		{name: "starts where other ends", other: NewInterval(day, NewClock(12, 30), 30), want: false},
		{name: "contains", other: NewInterval(day, NewClock(12, 30), 60), want: true},
		{name: "partial", other: NewInterval(day, NewClock(13, 0), 60), want: true},
		{name: "next day", other: NewInterval(day.AddDays(1), NewClock(13, 0), 30), want: false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, base.Overlaps(tt.other), tt.name)
		require.Equal(t, tt.want, tt.other.Overlaps(base), tt.name)
	}
}

func TestCanteen_Windows(t *testing.T) {
	c := Canteen{WorkingHours: []WorkingHour{
		{Meal: "lunch", From: NewClock(12, 0), To: NewClock(15, 0)},
		{Meal: "late lunch", From: NewClock(14, 0), To: NewClock(16, 0)},
	}}

	w, ok := c.MealAt(NewClock(14, 30))
	require.True(t, ok)
	require.Equal(t, "lunch", w.Meal, "first matching window wins")

	w, ok = c.MealAt(NewClock(15, 0))
	require.True(t, ok)
	require.Equal(t, "late lunch", w.Meal)

	_, ok = c.MealAt(NewClock(16, 0))
	require.False(t, ok)

	require.True(t, c.OpenFor(NewClock(14, 30), 30))
	require.True(t, c.OpenFor(NewClock(14, 30), 60), "covered by the second window")
	require.False(t, c.OpenFor(NewClock(15, 30), 60))
	require.False(t, c.OpenFor(NewClock(11, 30), 60))
}

func TestCanteenUpdate_Apply(t *testing.T) {
	c := Canteen{ID: "c1", Name: "Main", Location: "Campus", Capacity: 10}
	require.True(t, CanteenUpdate{}.IsEmpty())

	loc := "North"
	upd := CanteenUpdate{Location: &loc, WorkingHours: []WorkingHour{{Meal: "dinner", From: NewClock(18, 0), To: NewClock(20, 0)}}}
	require.False(t, upd.IsEmpty())

	got := upd.Apply(c)
	require.Equal(t, "Main", got.Name)
	require.Equal(t, "North", got.Location)
	require.Equal(t, 10, got.Capacity)
	require.Len(t, got.WorkingHours, 1)
	require.Equal(t, "Campus", c.Location)
}

func TestReservation_Cancel(t *testing.T) {
	r := Reservation{Status: StatusActive}
	require.True(t, r.IsActive())
	require.NoError(t, r.Cancel())
	require.Equal(t, StatusCancelled, r.Status)
	require.ErrorIs(t, r.Cancel(), errs.ErrAlreadyCancelled)
}

func TestStatus_Text(t *testing.T) {
	b, err := json.Marshal(StatusCancelled)
	require.NoError(t, err)
	require.Equal(t, `"Cancelled"`, string(b))

	var s Status
	require.NoError(t, json.Unmarshal([]byte(`"active"`), &s))
	require.Equal(t, StatusActive, s)
	require.Error(t, json.Unmarshal([]byte(`"pending"`), &s))

	_, err = json.Marshal(Status(0))
	require.Error(t, err)
}

func TestSlotRules(t *testing.T) {
	require.True(t, ValidDuration(30))
	require.True(t, ValidDuration(60))
	require.False(t, ValidDuration(45))
	require.True(t, SlotAligned(NewClock(12, 30)))
	require.False(t, SlotAligned(NewClock(12, 15)))
}
