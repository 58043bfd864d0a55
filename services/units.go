// Package services provides the pure calculation core of the quoting tool:
// unit conversion, price-formula evaluation, line item cost/price math,
// quote aggregation, margin reconciliation and export generation.
package services

// Unit is a linear measurement unit for item dimensions.
type Unit string

const (
	UnitInch       Unit = "inch"
	UnitFoot       Unit = "foot"
	UnitCentimeter Unit = "centimeter"
	UnitMeter      Unit = "meter"
)

// squareFeetFactor maps a unit to the factor that converts a
// width*height product in that unit into square feet.
var squareFeetFactor = map[Unit]float64{
	UnitInch:       1.0 / 144.0,
	UnitFoot:       1,
	UnitCentimeter: 1.0 / 929.0304,
	UnitMeter:      10.7639,
}

// AreaSquareFeet converts a width/height pair in the given unit into an
// area in square feet. Non-positive dimensions and unknown units yield 0.
func AreaSquareFeet(width, height float64, unit Unit) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	factor, ok := squareFeetFactor[unit]
	if !ok {
		return 0
	}
	return width * height * factor
}
