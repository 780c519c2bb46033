package eiopa

import (
	"context"
	"strconv"
	"strings"
	"time"

	"eiopago/src/config"
	"eiopago/src/schemas"
	"eiopago/src/utils"
	"eiopago/src/utils/requests"
)

type EiopaServiceClientI interface {
	GetOptions(ctx context.Context, field string) ([]interface{}, error)
	GetRFR(ctx context.Context, rfrType schemas.RFRType, region string, years, months []int) (*schemas.EiopaRFR, error)
	GetRFRWithVA(ctx context.Context, region string, years, months []int) (*schemas.EiopaRFR, error)
	GetRFRNoVA(ctx context.Context, region string, years, months []int) (*schemas.EiopaRFR, error)
}

type EiopaServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// NewClient creates a new instance of EiopaServiceClient
func NewClient(cfg *config.Config) (*EiopaServiceClient, error) {
	baseURL := cfg.ExternalClients.EIOPA.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultEiopaBaseURL
	}
	timeout := cfg.ExternalClients.EIOPA.TimeoutSeconds
	if timeout <= 0 {
		timeout = config.DefaultTimeoutSeconds
	}

	api := requests.NewExternalAPIService(time.Duration(timeout) * time.Second)
	return &EiopaServiceClient{
		API:     api,
		BaseURL: baseURL,
	}, nil
}

// GetOptions fetches the available values for a filterable field of the curve
// dataset: "region", "year" or "month"
func (c *EiopaServiceClient) GetOptions(ctx context.Context, field string) ([]interface{}, error) {
	endpoint := pathGetOptions(c.BaseURL, field)

	logger := utils.LoggerFromContext(ctx)
	logger.Debugf("requesting available options: %s", endpoint)

	var options []interface{}
	if err := c.API.GetJSON(ctx, endpoint, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// GetRFR fetches the risk-free rate curves of one family for a region,
// optionally narrowed to specific years and months, and shapes the response
// into the paired rate and metadata tables. The region must be non-empty;
// nil or empty filter slices leave that filter unset.
func (c *EiopaServiceClient) GetRFR(ctx context.Context, rfrType schemas.RFRType, region string, years, months []int) (*schemas.EiopaRFR, error) {
	if region == "" {
		return nil, ErrEmptyRegion
	}
	endpoint := pathGetRFR(c.BaseURL, rfrType, region, joinFilter(years), joinFilter(months))

	logger := utils.LoggerFromContext(ctx)
	logger.Debugf("requesting risk-free rate curves: %s", endpoint)

	var records []CurveRecord
	if err := c.API.GetJSON(ctx, endpoint, &records); err != nil {
		return nil, err
	}

	rfr, err := ParseRFR(records)
	if err != nil {
		return nil, err
	}
	logger.Debugf("shaped %d curve(s) from %s", rfr.Data.Ncol(), endpoint)
	return rfr, nil
}

// GetRFRWithVA fetches the curves that include the volatility adjustment
func (c *EiopaServiceClient) GetRFRWithVA(ctx context.Context, region string, years, months []int) (*schemas.EiopaRFR, error) {
	return c.GetRFR(ctx, schemas.WithVA, region, years, months)
}

// GetRFRNoVA fetches the curves without the volatility adjustment
func (c *EiopaServiceClient) GetRFRNoVA(ctx context.Context, region string, years, months []int) (*schemas.EiopaRFR, error) {
	return c.GetRFR(ctx, schemas.NoVA, region, years, months)
}

// joinFilter renders filter values as the comma-joined form the API expects.
// An empty slice yields the empty string, which omits the filter.
func joinFilter(values []int) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, ",")
}
