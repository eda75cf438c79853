package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/beagleboard/gbridge/pkg/greybus"
	"github.com/beagleboard/gbridge/pkg/sdio/wire"
)

func TestObserveOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	met := New(reg)

	met.ObserveOperation(wire.OpCommand, greybus.ResultSuccess)
	met.ObserveOperation(wire.OpCommand, greybus.ResultSuccess)
	met.ObserveOperation(wire.OpTransfer, greybus.ResultInvalid)

	assert.Equal(t, float64(2), testutil.ToFloat64(
		met.operations.WithLabelValues("Command", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		met.operations.WithLabelValues("Transfer", "invalid")))
}
