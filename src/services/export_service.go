package services

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"eiopago/src/schemas"
	"eiopago/src/utils"
)

const (
	// CurvesSheet holds the rate table, one column per curve over the maturity index.
	CurvesSheet = "Curves"
	// MetadataSheet holds the metadata table, one row per fetched curve.
	MetadataSheet = "Metadata"
	// MaturityColumn labels the maturity index column of exported rate tables.
	MaturityColumn = "Maturity"
)

type ExportServiceI interface {
	GenerateXLSXReport(ctx context.Context, rfr *schemas.EiopaRFR) (*excelize.File, error)
	WriteRatesCSV(ctx context.Context, rfr *schemas.EiopaRFR, writer io.Writer) error
	WriteMetadataCSV(ctx context.Context, rfr *schemas.EiopaRFR, writer io.Writer) error
}

type ExportService struct{}

// NewExportService creates a new instance of ExportService
func NewExportService() *ExportService {
	return &ExportService{}
}

// GenerateXLSXReport renders the query result as an Excel workbook with a
// Curves sheet for the rate table and a Metadata sheet for the curve
// descriptions. An empty result produces a workbook with an empty Curves
// sheet.
func (es *ExportService) GenerateXLSXReport(ctx context.Context, rfr *schemas.EiopaRFR) (*excelize.File, error) {
	logger := utils.LoggerFromContext(ctx)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", CurvesSheet); err != nil {
		return nil, err
	}

	if rfr == nil || rfr.Data == nil || rfr.Metadata == nil {
		return f, nil
	}

	if err := es.writeCurvesSheet(f, rfr.Data); err != nil {
		return nil, err
	}
	if err := es.writeMetadataSheet(f, rfr.Metadata); err != nil {
		return nil, err
	}

	logger.Debugf("exported %d curve(s) to XLSX", rfr.Data.Ncol())
	return f, nil
}

// writeCurvesSheet fills the Curves sheet: maturity index in column A, one
// rate column per curve. NA cells produced by curve padding stay blank.
func (es *ExportService) writeCurvesSheet(f *excelize.File, data *dataframe.DataFrame) error {
	if data.Ncol() == 0 {
		return nil
	}

	curveIDs := data.Names()
	columns := make([]series.Series, len(curveIDs))
	for i, curveID := range curveIDs {
		columns[i] = data.Col(curveID)
	}

	// Header row: maturity label followed by the curve ids
	if err := f.SetCellValue(CurvesSheet, "A1", MaturityColumn); err != nil {
		return err
	}
	for colIndex, curveID := range curveIDs {
		cell := fmt.Sprintf("%s1", es.toAlphaString(colIndex+2))
		if err := f.SetCellValue(CurvesSheet, cell, curveID); err != nil {
			return err
		}
	}

	// Format rates as percentages
	rateStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 10,
	})
	if err != nil {
		return err
	}

	for rowIndex := 0; rowIndex < data.Nrow(); rowIndex++ {
		maturityCell := fmt.Sprintf("A%d", rowIndex+2)
		if err := f.SetCellValue(CurvesSheet, maturityCell, rowIndex+1); err != nil {
			return err
		}
		for colIndex := range curveIDs {
			element := columns[colIndex].Elem(rowIndex)
			if element.IsNA() {
				continue
			}
			cell := fmt.Sprintf("%s%d", es.toAlphaString(colIndex+2), rowIndex+2)
			if err := f.SetCellValue(CurvesSheet, cell, element.Float()); err != nil {
				return err
			}
			if err := f.SetCellStyle(CurvesSheet, cell, cell, rateStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeMetadataSheet fills the Metadata sheet from the stringified table,
// restoring numeric cells where the value parses as a number. NA markers
// stay blank.
func (es *ExportService) writeMetadataSheet(f *excelize.File, metadata *dataframe.DataFrame) error {
	if metadata.Nrow() == 0 || metadata.Ncol() == 0 {
		return nil
	}

	index, err := f.NewSheet(MetadataSheet)
	if err != nil {
		return err
	}
	defer f.SetActiveSheet(index)

	// Header row holds the field names as-is
	for colIndex, fieldName := range metadata.Names() {
		cell := fmt.Sprintf("%s1", es.toAlphaString(colIndex+1))
		if err := f.SetCellValue(MetadataSheet, cell, fieldName); err != nil {
			return err
		}
	}

	for rowIndex, row := range metadata.Records()[1:] { // Skip the first row (headers)
		for colIndex, cellValue := range row {
			if cellValue == "NaN" {
				continue
			}
			cell := fmt.Sprintf("%s%d", es.toAlphaString(colIndex+1), rowIndex+2)
			numCellValue, err := strconv.ParseFloat(cellValue, 64)
			if err != nil {
				if err := f.SetCellValue(MetadataSheet, cell, cellValue); err != nil {
					return err
				}
			} else {
				if err := f.SetCellValue(MetadataSheet, cell, numCellValue); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WriteRatesCSV writes the rate table as CSV with a leading maturity index
// column. An empty result writes nothing.
func (es *ExportService) WriteRatesCSV(ctx context.Context, rfr *schemas.EiopaRFR, writer io.Writer) error {
	if rfr == nil || rfr.Data == nil || rfr.Data.Ncol() == 0 {
		return nil
	}

	maturities := make([]int, rfr.Data.Nrow())
	for i := range maturities {
		maturities[i] = i + 1
	}
	columns := make([]series.Series, 0, rfr.Data.Ncol()+1)
	columns = append(columns, series.New(maturities, series.Int, MaturityColumn))
	for _, curveID := range rfr.Data.Names() {
		columns = append(columns, rfr.Data.Col(curveID))
	}

	out := dataframe.New(columns...)
	if out.Err != nil {
		return out.Err
	}
	return out.WriteCSV(writer)
}

// WriteMetadataCSV writes the metadata table as CSV, with NaN marking the
// cells of fields a curve does not carry. An empty result writes nothing.
func (es *ExportService) WriteMetadataCSV(ctx context.Context, rfr *schemas.EiopaRFR, writer io.Writer) error {
	if rfr == nil || rfr.Metadata == nil || rfr.Metadata.Ncol() == 0 {
		return nil
	}
	return rfr.Metadata.WriteCSV(writer)
}

func (es *ExportService) toAlphaString(column int) string {
	result := ""
	for column > 0 {
		column--
		result = string(rune('A'+column%26)) + result
		column /= 26
	}
	return result
}
