package eiopa

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"eiopago/src/schemas"
	"eiopago/src/utils"
)

// ParseRFR shapes the raw curve records of one response into the paired
// rate and metadata tables of an EiopaRFR. Every record contributes one
// metadata row and one float rate column named after its id; records without
// a usable id fall back to CurveIDPlaceholder. Curves shorter than the
// longest one are padded with NA rows so all columns share the table extent.
// When several records carry the same id, the last one wins the rate column
// while keeping the column position of the first; their metadata rows are all
// preserved. An empty input produces a pair of empty tables.
func ParseRFR(records []CurveRecord) (*schemas.EiopaRFR, error) {
	if len(records) == 0 {
		return &schemas.EiopaRFR{
			Data:     &dataframe.DataFrame{},
			Metadata: &dataframe.DataFrame{},
		}, nil
	}

	// Metadata table: everything except the rate values, one row per record
	metaRows := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		row := make(map[string]interface{}, len(record))
		for field, value := range record {
			if field == schemas.CurveDataField {
				continue
			}
			row[field] = value
		}
		metaRows = append(metaRows, row)
	}
	metadata := utils.DataFrameFromRecords(metaRows, schemas.CurveIDField)
	if metadata.Err != nil {
		return nil, metadata.Err
	}

	// Rate table: one column per curve id, last record wins on duplicates
	curveIDs := make([]string, 0, len(records))
	curveValues := make(map[string][]float64, len(records))
	for i, record := range records {
		id, _ := record[schemas.CurveIDField].(string)
		if id == "" {
			id = CurveIDPlaceholder
		}
		values, err := curveData(i, id, record)
		if err != nil {
			return nil, err
		}
		if _, seen := curveValues[id]; !seen {
			curveIDs = append(curveIDs, id)
		}
		curveValues[id] = values
	}

	maxLen := 0
	for _, id := range curveIDs {
		if n := len(curveValues[id]); n > maxLen {
			maxLen = n
		}
	}

	columns := make([]series.Series, 0, len(curveIDs))
	for _, id := range curveIDs {
		columns = append(columns, series.New(padRates(curveValues[id], maxLen), series.Float, id))
	}
	data := dataframe.New(columns...)
	if data.Err != nil {
		return nil, data.Err
	}

	return &schemas.EiopaRFR{Data: &data, Metadata: &metadata}, nil
}

// curveData extracts the rate sequence of a single record.
func curveData(index int, id string, record CurveRecord) ([]float64, error) {
	raw, ok := record[schemas.CurveDataField]
	if !ok {
		return nil, fmt.Errorf("curve record %d (%s): %w", index, id, ErrMissingDataField)
	}
	sequence, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("curve record %d (%s): %w", index, id, ErrInvalidDataField)
	}

	values := make([]float64, len(sequence))
	for i, entry := range sequence {
		value, ok := entry.(float64)
		if !ok {
			return nil, fmt.Errorf("curve record %d (%s): entry %d: %w", index, id, i, ErrInvalidDataField)
		}
		values[i] = value
	}
	return values, nil
}

// padRates extends values with NaN up to length, so curves of differing
// maturities can share one table without truncation.
func padRates(values []float64, length int) []float64 {
	if len(values) == length {
		return values
	}
	padded := make([]float64, length)
	copy(padded, values)
	for i := len(values); i < length; i++ {
		padded[i] = math.NaN()
	}
	return padded
}
