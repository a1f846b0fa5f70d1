package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitAllowsBurstThenRejects(t *testing.T) {
	rl := NewRateLimiter()

	calls := 0
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/parks", nil)
		req.RemoteAddr = "203.0.113.7:51000"
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		return rec.Code
	}

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, do(), "request %d within burst", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, do())
	assert.Equal(t, 10, calls)
}

func TestLimitTracksClientsSeparately(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/parks", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		return rec.Code
	}

	for i := 0; i < 11; i++ {
		do("203.0.113.7:51000")
	}
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.7:51000"))
	assert.Equal(t, http.StatusOK, do("198.51.100.9:40000"))
}
