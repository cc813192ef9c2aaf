package store

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthtrack-api/pkg/metrics"
)

// failingPut mirrors the repository method shape: named error return,
// deferred closure observing it.
func failingPut(s *Store) (err error) {
	start := time.Now()
	defer func() { s.Observe("widgets", "put", start, err) }()
	return errors.New("write failed")
}

func succeedingGet(s *Store) (err error) {
	start := time.Now()
	defer func() { s.Observe("widgets", "get", start, err) }()
	return nil
}

func TestObserveCountsFailedOperations(t *testing.T) {
	m := metrics.NewMetrics("healthtrack_test", "store")
	s := &Store{metrics: m}

	require.Error(t, failingPut(s))
	require.NoError(t, succeedingGet(s))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("widgets", "put")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreErrors.WithLabelValues("widgets", "put")),
		"a failed put must increment the error counter")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("widgets", "get")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StoreErrors.WithLabelValues("widgets", "get")))
}

func TestObserveWithoutMetrics(t *testing.T) {
	s := &Store{}
	assert.NotPanics(t, func() {
		s.Observe("widgets", "get", time.Now(), nil)
	})
}
