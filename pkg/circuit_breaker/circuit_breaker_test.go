package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	type step struct {
		advance   time.Duration
		fn        func() error
		wantErr   error
		wantState State
	}
	tests := []struct {
		name  string
		cfg   Config
		steps []step
	}{
		{
			name: "stays closed below ratio",
			cfg:  Config{Window: 4, FailureRatio: 0.5, Cooldown: time.Minute, Recovery: 2},
			steps: []step{
				{fn: ok, wantState: Closed},
				{fn: fail, wantErr: errService, wantState: Closed},
				{fn: ok, wantState: Closed},
			},
		},
		{
			name: "opens, rejects, recovers",
			cfg:  Config{Window: 4, FailureRatio: 0.5, Cooldown: time.Minute, Recovery: 2},
			steps: []step{
				{fn: fail, wantErr: errService, wantState: Closed},
				{fn: fail, wantErr: errService, wantState: Open},
				{fn: ok, wantErr: ErrOpen, wantState: Open},
				{advance: 2 * time.Minute, fn: ok, wantState: HalfOpen},
				{fn: ok, wantState: Closed},
				{fn: ok, wantState: Closed},
			},
		},
		{
			name: "half-open failure opens again",
			cfg:  Config{Window: 2, FailureRatio: 0.5, Cooldown: time.Second, Recovery: 1},
			steps: []step{
				{fn: fail, wantErr: errService, wantState: Open},
				{advance: 2 * time.Second, fn: fail, wantErr: errService, wantState: Open},
				{fn: ok, wantErr: ErrOpen, wantState: Open},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
			cb := New(tt.cfg).(*circuitBreaker)
			cb.now = func() time.Time { return now }

			for i, s := range tt.steps {
				now = now.Add(s.advance)
				err := cb.Call(s.fn)
				require.ErrorIs(t, err, s.wantErr, "step %d", i)
				if s.wantErr == nil {
					require.NoError(t, err, "step %d", i)
				}
				require.Equal(t, s.wantState, cb.State(), "step %d", i)
			}
		})
	}
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := New(Config{Window: 1, FailureRatio: 1, Cooldown: time.Hour, Recovery: 1})
	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
