// Package emissions holds the vocabulary shared by the embodied-carbon and
// operational-scope calculators: error sentinels, the missing-factor policy,
// and unit conversion helpers.
package emissions

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error sentinels returned by calculator add/remove operations.
// These can be compared with errors.Is().
var (
	// ErrInvalidInput indicates a negative, non-finite, or missing
	// required value on a line item. The item is rejected at the
	// boundary and nothing is recorded.
	ErrInvalidInput = constError("invalid line item input")

	// ErrFactorNotFound indicates the registry has no emission factor
	// for the requested category/type/region. Whether the add is
	// rejected or recorded with zero emissions depends on the
	// calculator's Policy.
	ErrFactorNotFound = constError("emission factor not found")

	// ErrItemNotFound indicates a removal referenced an unknown item id.
	ErrItemNotFound = constError("line item not found")
)

// Policy controls how a calculator handles a missing emission factor.
// A calculator instance applies exactly one policy to every category;
// mixing policies per item is not supported.
type Policy int

const (
	// PolicyReject refuses the add with ErrFactorNotFound. Nothing is
	// recorded and the item counts toward no total. This is the default.
	PolicyReject Policy = iota

	// PolicyFlagZero records the item with zero emissions and marks it
	// FactorMissing so a caller can surface an inline warning.
	PolicyFlagZero
)

// String returns a human-readable representation of the Policy.
func (p Policy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyFlagZero:
		return "flag-zero"
	default:
		return "unknown"
	}
}

// KgPerTonne converts between the internal mass unit (kg CO2-e) and the
// reporting unit (tonnes CO2-e).
const KgPerTonne = 1000.0

// Tonnes converts kilograms of CO2-e to tonnes. Conversion happens only at
// the reporting boundary; all internal arithmetic stays in kilograms.
func Tonnes(kg float64) float64 {
	return kg / KgPerTonne
}
