package eiopa

import "errors"

// CurveRecord is one raw curve as returned by the API: a flat map of scalar
// metadata fields plus the data field holding the rate sequence.
type CurveRecord map[string]interface{}

// CurveIDPlaceholder keys the rate column of a record that carries no usable id.
const CurveIDPlaceholder = "unknown"

var (
	// ErrEmptyRegion is returned when a curve query is attempted without a region code.
	ErrEmptyRegion = errors.New("region must be a non-empty string")

	// ErrMissingDataField is returned when a curve record carries no rate values at all.
	ErrMissingDataField = errors.New("curve record is missing its rate values")

	// ErrInvalidDataField is returned when the rate values of a record are not a numeric sequence.
	ErrInvalidDataField = errors.New("curve record rate values are not numeric")
)
