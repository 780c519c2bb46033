package eiopa

import (
	"fmt"
	"strings"

	"eiopago/src/schemas"
)

// pathGetOptions builds the endpoint listing the available values of a
// filterable field ("region", "year" or "month").
func pathGetOptions(baseURL, field string) string {
	return fmt.Sprintf("%s/%s", baseURL, field)
}

// pathGetRFR builds the curve query endpoint. year and month are comma-joined
// filter values; an empty filter is omitted entirely, and when no filter is
// set the path carries no query string. The served API distinguishes raw
// commas from their escaped form, so the query is assembled by hand instead
// of through url.Values.
func pathGetRFR(baseURL string, rfrType schemas.RFRType, region, year, month string) string {
	path := fmt.Sprintf("%s/%s/%s", baseURL, rfrType, region)

	params := make([]string, 0, 2)
	if year != "" {
		params = append(params, "year="+year)
	}
	if month != "" {
		params = append(params, "month="+month)
	}
	if len(params) > 0 {
		path += "?" + strings.Join(params, "&")
	}
	return path
}
