package eiopa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eiopago/src/clients/eiopa"
)

func TestParseRFR(t *testing.T) {
	t.Run("shapes records into paired tables", func(t *testing.T) {
		records := []eiopa.CurveRecord{
			{
				"id":     "20171231_rfr_spot_with_va_FR",
				"type":   "rfr_spot_with_va",
				"region": "FR",
				"year":   2017.0,
				"month":  12.0,
				"data":   []interface{}{0.013, 0.014, 0.015},
			},
			{
				"id":     "20181231_rfr_spot_with_va_FR",
				"type":   "rfr_spot_with_va",
				"region": "FR",
				"year":   2018.0,
				"month":  12.0,
				"data":   []interface{}{0.011, 0.012, 0.013},
			},
		}

		rfr, err := eiopa.ParseRFR(records)
		require.NoError(t, err)
		require.NotNil(t, rfr)

		// One rate column per record, in input order
		assert.Equal(t, []string{"20171231_rfr_spot_with_va_FR", "20181231_rfr_spot_with_va_FR"}, rfr.Data.Names())
		assert.Equal(t, 3, rfr.Data.Nrow())
		assert.Equal(t, 0.013, rfr.Data.Col("20171231_rfr_spot_with_va_FR").Elem(0).Float())
		assert.Equal(t, 0.013, rfr.Data.Col("20181231_rfr_spot_with_va_FR").Elem(2).Float())

		// One metadata row per record, id column first, rate values excluded
		assert.Equal(t, 2, rfr.Metadata.Nrow())
		assert.Equal(t, []string{"id", "month", "region", "type", "year"}, rfr.Metadata.Names())
		assert.Equal(t, "2017", rfr.Metadata.Col("year").Elem(0).String())
		assert.Equal(t, "2018", rfr.Metadata.Col("year").Elem(1).String())
	})

	t.Run("empty input produces empty tables", func(t *testing.T) {
		rfr, err := eiopa.ParseRFR(nil)
		require.NoError(t, err)
		require.NotNil(t, rfr)

		assert.Equal(t, 0, rfr.Data.Ncol())
		assert.Equal(t, 0, rfr.Data.Nrow())
		assert.Equal(t, 0, rfr.Metadata.Ncol())
		assert.Equal(t, 0, rfr.Metadata.Nrow())
	})

	t.Run("metadata columns are the union of record fields", func(t *testing.T) {
		records := []eiopa.CurveRecord{
			{"id": "a", "type": "rfr_spot_with_va", "data": []interface{}{0.01}},
			{"id": "b", "region": "FR", "data": []interface{}{0.02}},
		}

		rfr, err := eiopa.ParseRFR(records)
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "region", "type"}, rfr.Metadata.Names())
		// Fields a record does not carry stay NA
		assert.True(t, rfr.Metadata.Col("region").Elem(0).IsNA())
		assert.True(t, rfr.Metadata.Col("type").Elem(1).IsNA())
		assert.Equal(t, "rfr_spot_with_va", rfr.Metadata.Col("type").Elem(0).String())
		assert.Equal(t, "FR", rfr.Metadata.Col("region").Elem(1).String())
	})

	t.Run("record without id falls back to the placeholder", func(t *testing.T) {
		records := []eiopa.CurveRecord{
			{"region": "FR", "data": []interface{}{0.01, 0.02}},
		}

		rfr, err := eiopa.ParseRFR(records)
		require.NoError(t, err)

		assert.Equal(t, []string{eiopa.CurveIDPlaceholder}, rfr.Data.Names())
		assert.Equal(t, 1, rfr.Metadata.Nrow())
	})

	t.Run("shorter curves are padded with NA rows", func(t *testing.T) {
		records := []eiopa.CurveRecord{
			{"id": "long", "data": []interface{}{0.01, 0.02, 0.03}},
			{"id": "short", "data": []interface{}{0.04}},
		}

		rfr, err := eiopa.ParseRFR(records)
		require.NoError(t, err)

		assert.Equal(t, 3, rfr.Data.Nrow())
		shortCol := rfr.Data.Col("short")
		assert.Equal(t, 0.04, shortCol.Elem(0).Float())
		assert.True(t, shortCol.Elem(1).IsNA())
		assert.True(t, shortCol.Elem(2).IsNA())

		longCol := rfr.Data.Col("long")
		for i := 0; i < 3; i++ {
			assert.False(t, longCol.Elem(i).IsNA())
		}
	})

	t.Run("duplicate ids keep the first position and the last values", func(t *testing.T) {
		records := []eiopa.CurveRecord{
			{"id": "dup", "year": 2017.0, "data": []interface{}{0.01, 0.02}},
			{"id": "other", "year": 2017.0, "data": []interface{}{0.05, 0.06}},
			{"id": "dup", "year": 2018.0, "data": []interface{}{0.03, 0.04}},
		}

		rfr, err := eiopa.ParseRFR(records)
		require.NoError(t, err)

		assert.Equal(t, []string{"dup", "other"}, rfr.Data.Names())
		assert.Equal(t, 0.03, rfr.Data.Col("dup").Elem(0).Float())
		assert.Equal(t, 0.04, rfr.Data.Col("dup").Elem(1).Float())
		// Every fetched record keeps its metadata row
		assert.Equal(t, 3, rfr.Metadata.Nrow())
	})

	t.Run("record without rate values is an error", func(t *testing.T) {
		records := []eiopa.CurveRecord{
			{"id": "a", "data": []interface{}{0.01}},
			{"id": "b", "region": "FR"},
		}

		rfr, err := eiopa.ParseRFR(records)
		require.Error(t, err)
		assert.ErrorIs(t, err, eiopa.ErrMissingDataField)
		assert.Contains(t, err.Error(), "b")
		assert.Nil(t, rfr)
	})

	t.Run("non-numeric rate values are an error", func(t *testing.T) {
		records := []eiopa.CurveRecord{
			{"id": "a", "data": []interface{}{0.01, "not-a-rate"}},
		}

		rfr, err := eiopa.ParseRFR(records)
		require.Error(t, err)
		assert.ErrorIs(t, err, eiopa.ErrInvalidDataField)
		assert.Nil(t, rfr)
	})

	t.Run("rate values of the wrong shape are an error", func(t *testing.T) {
		records := []eiopa.CurveRecord{
			{"id": "a", "data": "0.01"},
		}

		rfr, err := eiopa.ParseRFR(records)
		require.Error(t, err)
		assert.ErrorIs(t, err, eiopa.ErrInvalidDataField)
		assert.Nil(t, rfr)
	})
}
