// Package units holds the unit conversions shared by the loop builders and the
// efficiency standards. Code tables are published in IP units; the object model
// stores SI.
package units

import "math"

const (
	wattsPerBtuH = 0.29307107
	wattsPerTon  = 3516.85284
	wattsPerHP   = 745.699872

	m3sPerGPM    = 6.30901964e-5
	m3PerGallon  = 0.003785411784
	metersPerFt  = 0.3048
	pascalPerInH2O = 249.088908
)

func FToC(f float64) float64 {
	return (f - 32.0) / 1.8
}

func CToF(c float64) float64 {
	return c*1.8 + 32.0
}

// DeltaFToC converts a temperature difference, not an absolute temperature.
func DeltaFToC(df float64) float64 {
	return df / 1.8
}

func BtuHToWatts(btuh float64) float64 {
	return btuh * wattsPerBtuH
}

func WattsToBtuH(w float64) float64 {
	return w / wattsPerBtuH
}

func TonsToWatts(tons float64) float64 {
	return tons * wattsPerTon
}

func WattsToTons(w float64) float64 {
	return w / wattsPerTon
}

func HPToWatts(hp float64) float64 {
	return hp * wattsPerHP
}

func WattsToHP(w float64) float64 {
	return w / wattsPerHP
}

func GPMToM3s(gpm float64) float64 {
	return gpm * m3sPerGPM
}

func M3sToGPM(m3s float64) float64 {
	return m3s / m3sPerGPM
}

func GallonsToM3(gal float64) float64 {
	return gal * m3PerGallon
}

func M3ToGallons(m3 float64) float64 {
	return m3 / m3PerGallon
}

func FtToMeters(ft float64) float64 {
	return ft * metersPerFt
}

func InH2OToPascals(in float64) float64 {
	return in * pascalPerInH2O
}

// FtH2OToPascals converts pump head expressed in feet of water column.
func FtH2OToPascals(ft float64) float64 {
	return ft * 12.0 * pascalPerInH2O
}

// KWPerTonToCOP converts the kW/ton ratings used by chiller efficiency tables.
func KWPerTonToCOP(kwPerTon float64) float64 {
	return 12.0 / (kwPerTon * 3.412)
}

func COPToKWPerTon(cop float64) float64 {
	return 12.0 / (cop * 3.412)
}

// Round trims float noise from derived values before they land in the model.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
