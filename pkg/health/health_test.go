package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func serve(t *testing.T, handler http.HandlerFunc) (int, probeBody) {
	t.Helper()
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body probeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func failing(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func passing(context.Context) error { return nil }

func TestLiveEndpoint_NoChecks(t *testing.T) {
	h := New()
	code, body := serve(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
	assert.Empty(t, body.Checks)
}

func TestReadyEndpoint_Draining(t *testing.T) {
	h := New()
	code, body := serve(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "draining", body.Status)
	assert.False(t, h.IsReady())

	h.SetReady(true)
	code, body = serve(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
	assert.True(t, h.IsReady())
}

func TestState_FailureThreshold(t *testing.T) {
	s := newState(Check{Name: "postgres", Func: failing("connection refused"), FailureThreshold: 2})
	ctx := context.Background()

	s.run(ctx)
	_, failed := s.failure()
	assert.False(t, failed, "one failure is below the threshold")

	s.run(ctx)
	msg, failed := s.failure()
	assert.True(t, failed)
	assert.Equal(t, "connection refused", msg)
}

func TestState_SuccessThreshold(t *testing.T) {
	var healthy bool
	s := newState(Check{
		Name: "redis",
		Func: func(context.Context) error {
			if healthy {
				return nil
			}
			return errors.New("down")
		},
		FailureThreshold: 1,
		SuccessThreshold: 2,
	})
	ctx := context.Background()

	s.run(ctx)
	_, failed := s.failure()
	require.True(t, failed)

	healthy = true
	s.run(ctx)
	_, failed = s.failure()
	assert.True(t, failed, "one pass is below the success threshold")

	s.run(ctx)
	_, failed = s.failure()
	assert.False(t, failed)
}

func TestState_Defaults(t *testing.T) {
	s := newState(Check{Name: "x", Func: passing})
	assert.Equal(t, 3, s.FailureThreshold)
	assert.Equal(t, 1, s.SuccessThreshold)
	assert.Equal(t, time.Second, s.Timeout)
}

func TestState_TimeoutApplied(t *testing.T) {
	s := newState(Check{
		Name:             "slow",
		Timeout:          10 * time.Millisecond,
		FailureThreshold: 1,
		Func: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})
	s.run(context.Background())
	msg, failed := s.failure()
	assert.True(t, failed)
	assert.Contains(t, msg, "deadline exceeded")
}

func TestReadyEndpoint_FailuresSorted(t *testing.T) {
	h := New()
	h.SetReady(true)
	h.Register(Readiness, Check{Name: "redis", Func: failing("redis down"), FailureThreshold: 1})
	h.Register(Readiness, Check{Name: "postgres", Func: failing("pg down"), FailureThreshold: 1})
	h.Register(Readiness, Check{Name: "cache", Func: passing})

	for _, s := range h.snapshot(Readiness) {
		s.run(context.Background())
	}

	w := httptest.NewRecorder()
	h.ReadyEndpoint(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"postgres":"pg down","redis":"redis down"}}`, w.Body.String())
	assert.Less(t,
		strings.Index(w.Body.String(), "postgres"),
		strings.Index(w.Body.String(), "redis"),
	)
	assert.False(t, h.IsReady())
}

func TestProbesAreSeparate(t *testing.T) {
	h := New()
	h.Register(Readiness, Check{Name: "postgres", Func: failing("down"), FailureThreshold: 1})
	for _, s := range h.snapshot(Readiness) {
		s.run(context.Background())
	}

	code, body := serve(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
}

func TestStartStop(t *testing.T) {
	h := New()
	calls := make(chan struct{}, 16)
	h.Register(Liveness, Check{Name: "tick", Func: func(context.Context) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return nil
	}})

	h.Start(context.Background(), 5*time.Millisecond)
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("check did not run")
	}
	h.Stop()
	h.Stop()
}

func TestPingCheck(t *testing.T) {
	ok := PingCheck(pingerFunc(func(context.Context) error { return nil }))
	assert.NoError(t, ok(context.Background()))

	bad := PingCheck(pingerFunc(func(context.Context) error { return errors.New("refused") }))
	err := bad(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")
}

func TestGoroutineCountCheck(t *testing.T) {
	assert.NoError(t, GoroutineCountCheck(runtime.NumGoroutine()+100)(context.Background()))
	assert.Error(t, GoroutineCountCheck(0)(context.Background()))
}

// --- Mock implementations ---

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }
