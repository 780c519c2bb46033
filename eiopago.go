// Package eiopago is a client for the EIOPA risk-free interest rate term
// structures served at https://mehdiechchelh.com/api. It fetches the curves
// of a region, optionally filtered by year and month, and shapes them into a
// pair of gota DataFrames: the rates over the maturity index and the
// metadata describing each curve.
package eiopago

import (
	"context"

	"eiopago/src/clients/eiopa"
	"eiopago/src/config"
	"eiopago/src/schemas"
)

// Re-exported types of the client and its results.
type (
	Client      = eiopa.EiopaServiceClient
	CurveRecord = eiopa.CurveRecord
	EiopaRFR    = schemas.EiopaRFR
	RFRType     = schemas.RFRType
)

// The two curve families served by the API.
const (
	WithVA = schemas.WithVA
	NoVA   = schemas.NoVA
)

// DefaultBaseURL is the endpoint queried when no configuration is supplied.
const DefaultBaseURL = config.DefaultEiopaBaseURL

// Preformatted errors, re-exported for errors.Is checks.
var (
	ErrEmptyRegion      = eiopa.ErrEmptyRegion
	ErrMissingDataField = eiopa.ErrMissingDataField
	ErrInvalidDataField = eiopa.ErrInvalidDataField
)

// NewClient creates a client from cfg.
func NewClient(cfg *config.Config) (*Client, error) {
	return eiopa.NewClient(cfg)
}

// NewDefaultClient creates a client against DefaultBaseURL with the default
// request timeout.
func NewDefaultClient() (*Client, error) {
	return eiopa.NewClient(config.Default())
}

// GetOptions fetches the available values for a filterable field ("region",
// "year" or "month") from the default endpoint.
func GetOptions(ctx context.Context, field string) ([]interface{}, error) {
	client, err := NewDefaultClient()
	if err != nil {
		return nil, err
	}
	return client.GetOptions(ctx, field)
}

// GetRFR fetches the risk-free rate curves of one family for a region from
// the default endpoint. Nil or empty years and months leave that filter
// unset.
func GetRFR(ctx context.Context, rfrType RFRType, region string, years, months []int) (*EiopaRFR, error) {
	client, err := NewDefaultClient()
	if err != nil {
		return nil, err
	}
	return client.GetRFR(ctx, rfrType, region, years, months)
}

// GetRFRWithVA fetches the curves that include the volatility adjustment.
func GetRFRWithVA(ctx context.Context, region string, years, months []int) (*EiopaRFR, error) {
	return GetRFR(ctx, WithVA, region, years, months)
}

// GetRFRNoVA fetches the curves without the volatility adjustment.
func GetRFRNoVA(ctx context.Context, region string, years, months []int) (*EiopaRFR, error) {
	return GetRFR(ctx, NoVA, region, years, months)
}
