package schemas

import (
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// RFRType selects one of the two term structure families published by EIOPA.
type RFRType string

const (
	// WithVA selects the curves that include the volatility adjustment.
	WithVA RFRType = "with_va"
	// NoVA selects the curves without the volatility adjustment.
	NoVA RFRType = "no_va"
)

// Wire field names of a raw curve record.
const (
	// CurveIDField holds the curve identifier and keys the rate columns.
	CurveIDField = "id"
	// CurveDataField holds the sequence of annual spot rates.
	CurveDataField = "data"
)

// EiopaRFR pairs the two tables produced by one risk-free rate query.
// Data holds one float column of spot rates per curve, keyed by curve id,
// with row n representing the rate at maturity n+1 years. Metadata holds one
// row per fetched record with the descriptive fields of that curve. Rows of
// Metadata and columns of Data describe the same curves through the id field.
type EiopaRFR struct {
	Data     *dataframe.DataFrame
	Metadata *dataframe.DataFrame
}

// String renders a short preview of the result: one line per fetched curve
// with the first values of its term structure.
func (r *EiopaRFR) String() string {
	lines := []string{"<EiopaRFR>"}
	if r == nil || r.Data == nil || r.Metadata == nil {
		return lines[0]
	}

	dataIDs := map[string]bool{}
	for _, name := range r.Data.Names() {
		dataIDs[name] = true
	}
	hasIDColumn := false
	for _, name := range r.Metadata.Names() {
		if name == CurveIDField {
			hasIDColumn = true
		}
	}

	for i := 0; i < r.Metadata.Nrow(); i++ {
		curveID := "?"
		if hasIDColumn {
			curveID = r.Metadata.Col(CurveIDField).Elem(i).String()
		}
		if !dataIDs[curveID] {
			lines = append(lines, "  "+curveID)
			continue
		}

		column := r.Data.Col(curveID)
		previewLen := column.Len()
		if previewLen > 3 {
			previewLen = 3
		}
		preview := make([]string, 0, previewLen)
		for j := 0; j < previewLen; j++ {
			preview = append(preview, strconv.FormatFloat(column.Elem(j).Float(), 'g', -1, 64))
		}
		lines = append(lines, "  "+curveID+" > "+strings.Join(preview, ", ")+" ...")
	}
	return strings.Join(lines, "\n")
}
