package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)
	assert.Same(t, reg, m.Registry())

	_, err = New(reg)
	assert.Error(t, err, "registering twice on the same registry must fail")
}

func TestObserve(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveRequest("conjugate", 200, 3*time.Millisecond)
	m.ObserveRequest("conjugate", 200, time.Millisecond)
	m.ObserveRequest("conjugate", 400, time.Millisecond)
	m.ObserveGeneration("aoristos", true)
	m.ObserveGeneration("aoristos", false)
	m.ObserveGeneration("aoristos", false)

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("conjugate", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("conjugate", "400")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("aoristos", OutcomeOK)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("aoristos", OutcomeDiagnostic)), 0)
}
