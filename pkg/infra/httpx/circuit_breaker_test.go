package httpx_test

import (
	"errors"
	"testing"
	"time"

	"github.com/playdeck/tabletally/pkg/infra/httpx"
	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_PassesThroughSuccess(t *testing.T) {
	cb := httpx.NewCircuitBreaker("test", time.Second, 3)
	assert.NoError(t, cb.Execute(func() error { return nil }))
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := httpx.NewCircuitBreaker("test", time.Minute, 3)
	boom := errors.New("down")

	for i := 0; i < 3; i++ {
		assert.Error(t, cb.Execute(func() error { return boom }))
	}

	// breaker is open now: the function must not run anymore
	ran := false
	err := cb.Execute(func() error {
		ran = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, ran)
}
