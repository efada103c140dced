package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperatureConversions(t *testing.T) {
	assert.InDelta(t, 0.0, FToC(32), 0.001)
	assert.InDelta(t, 100.0, FToC(212), 0.001)
	assert.InDelta(t, 82.22, FToC(180), 0.01)
	assert.InDelta(t, 180.0, CToF(FToC(180)), 0.001)
	assert.InDelta(t, 11.11, DeltaFToC(20), 0.01)
}

func TestPowerConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"300 kBtu/h boiler", BtuHToWatts(300000), 87921.3},
		{"one ton of cooling", TonsToWatts(1), 3516.85},
		{"ten horsepower", HPToWatts(10), 7457.0},
		{"round trip btu/h", WattsToBtuH(BtuHToWatts(65000)), 65000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, 0.5)
		})
	}
}

func TestFlowAndHead(t *testing.T) {
	assert.InDelta(t, 6.309e-5, GPMToM3s(1), 1e-8)
	assert.InDelta(t, 100.0, M3sToGPM(GPMToM3s(100)), 0.001)
	assert.InDelta(t, 0.3785, GallonsToM3(100)/10, 0.0001)
	assert.InDelta(t, 249.089, InH2OToPascals(1), 0.01)
	assert.InDelta(t, 179344.0, FtH2OToPascals(60), 1.0)
}

func TestKWPerTon(t *testing.T) {
	// 0.703 kW/ton is a centrifugal tier; COP near 5.0
	cop := KWPerTonToCOP(0.703)
	assert.InDelta(t, 5.003, cop, 0.01)
	assert.InDelta(t, 0.703, COPToKWPerTon(cop), 0.0001)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.142, Round(3.14159, 3))
	assert.Equal(t, 80.0, Round(79.9999999, 2))
}
