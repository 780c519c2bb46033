package render

import (
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"eiopago/src/schemas"
	"eiopago/src/utils"
)

// RenderTermStructure draws every curve of the result as one line over the
// maturity axis and returns the chart as an embeddable HTML document. NA rows
// introduced by curve padding become gaps in the affected line.
func RenderTermStructure(rfr *schemas.EiopaRFR, title string) string {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithAnimation(false),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1100px",
			Height: "600px",
		}),
	)

	if rfr == nil || rfr.Data == nil || rfr.Data.Ncol() == 0 {
		return string(line.RenderContent())
	}

	// Maturity labels along the X axis, starting at one year
	labels := make([]string, rfr.Data.Nrow())
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	line.SetXAxis(labels)

	for colorIndex, curveID := range rfr.Data.Names() {
		column := rfr.Data.Col(curveID)
		data := make([]opts.LineData, 0, column.Len())
		for i := 0; i < column.Len(); i++ {
			element := column.Elem(i)
			if element.IsNA() {
				// Keep the slot so later points stay aligned with their maturity
				data = append(data, opts.LineData{Value: nil})
				continue
			}
			data = append(data, opts.LineData{Value: element.Float()})
		}
		line.AddSeries(curveID, data,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(true),
			}),
			// Add distinct color for this series
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: utils.GetChartColor(colorIndex),
			}),
		)
	}

	return string(line.RenderContent())
}
