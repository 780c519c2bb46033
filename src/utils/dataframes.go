package utils

//nolint:depguard
import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DataFrameFromRecords builds a string-typed DataFrame out of loosely shaped
// row maps, one row per map in input order. Columns are the union of the field
// names across all rows; a row that lacks a field gets an NA cell there.
// Decoded JSON maps carry no key order, so columns are sorted alphabetically
// with indexCol first when present.
func DataFrameFromRecords(rows []map[string]interface{}, indexCol string) dataframe.DataFrame {
	if len(rows) == 0 {
		return dataframe.DataFrame{}
	}

	// Gather all unique columns
	allColsMap := map[string]bool{}
	for _, row := range rows {
		for col := range row {
			allColsMap[col] = true
		}
	}
	if len(allColsMap) == 0 {
		return dataframe.DataFrame{}
	}
	var allCols []string
	for col := range allColsMap {
		if col != indexCol {
			allCols = append(allCols, col)
		}
	}
	sort.Strings(allCols)

	// Reorder columns: index first
	finalCols := allCols
	if allColsMap[indexCol] {
		finalCols = append([]string{indexCol}, allCols...)
	}

	// Build final DataFrame
	colSeries := make([]series.Series, len(finalCols))
	for i, col := range finalCols {
		colData := make([]interface{}, len(rows))
		for j, row := range rows {
			value, ok := row[col]
			if !ok {
				continue // nil cell reads back as NA
			}
			colData[j] = formatCell(value)
		}
		colSeries[i] = series.New(colData, series.String, col)
	}

	return dataframe.New(colSeries...)
}

// formatCell renders a decoded JSON scalar for a string-typed column. nil is
// kept as nil so the cell stays NA instead of becoming a formatted zero value.
func formatCell(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
