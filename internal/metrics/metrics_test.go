package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestConnectionGauge(t *testing.T) {
	before := testutil.ToFloat64(ActiveConnections)

	RecordConnectionOpened()
	RecordConnectionOpened()
	RecordConnectionClosed()

	assert.Equal(t, before+1, testutil.ToFloat64(ActiveConnections))
	RecordConnectionClosed()
}

func TestCounters(t *testing.T) {
	fallback := testutil.ToFloat64(ExchangesTotal.WithLabelValues(OutcomeFallback))
	ai := testutil.ToFloat64(MessagesStored.WithLabelValues("ai"))

	RecordExchange(OutcomeFallback)
	RecordMessageStored("ai")
	RecordMessageStored("ai")

	assert.Equal(t, fallback+1, testutil.ToFloat64(ExchangesTotal.WithLabelValues(OutcomeFallback)))
	assert.Equal(t, ai+2, testutil.ToFloat64(MessagesStored.WithLabelValues("ai")))
}

func TestRecordGatewayCall(t *testing.T) {
	RecordGatewayCall(time.Now().Add(-time.Second))
	assert.Positive(t, testutil.CollectAndCount(GatewayDuration))
}
