package requests_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eiopago/src/utils"
	"eiopago/src/utils/requests"
)

func TestGetJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ok", "count": 2}`)
	}))
	defer ts.Close()

	api := requests.NewExternalAPIService(5 * time.Second)

	var payload map[string]interface{}
	err := api.GetJSON(context.Background(), ts.URL, &payload)
	require.NoError(t, err)

	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, 2.0, payload["count"])
}

func TestGetJSONRejectedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	api := requests.NewExternalAPIService(5 * time.Second)

	var payload map[string]interface{}
	err := api.GetJSON(context.Background(), ts.URL, &payload)
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	assert.Contains(t, httpErr.Message, ts.URL)
}

func TestGetJSONUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	ts.Close()

	api := requests.NewExternalAPIService(5 * time.Second)

	var payload map[string]interface{}
	err := api.GetJSON(context.Background(), ts.URL, &payload)
	require.Error(t, err)

	var unreachable *utils.UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, ts.URL, unreachable.URL)
	assert.NotNil(t, errors.Unwrap(unreachable))
}

func TestGetJSONTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer ts.Close()

	api := requests.NewExternalAPIService(20 * time.Millisecond)

	var payload map[string]interface{}
	err := api.GetJSON(context.Background(), ts.URL, &payload)
	require.Error(t, err)

	// A timed out request never produced a response
	var unreachable *utils.UnreachableError
	require.ErrorAs(t, err, &unreachable)
}

func TestGetJSONMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer ts.Close()

	api := requests.NewExternalAPIService(5 * time.Second)

	var payload map[string]interface{}
	err := api.GetJSON(context.Background(), ts.URL, &payload)
	require.Error(t, err)

	// A decoding failure is neither a rejection nor an unreachable service
	var httpErr *utils.HTTPError
	assert.False(t, errors.As(err, &httpErr))
	var unreachable *utils.UnreachableError
	assert.False(t, errors.As(err, &unreachable))
}

func TestGetWithParams(t *testing.T) {
	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query()
		fmt.Fprint(w, `{}`)
	}))
	defer ts.Close()

	api := requests.NewExternalAPIService(5 * time.Second)

	params := url.Values{}
	params.Add("field", "region")
	resp, err := api.Get(context.Background(), ts.URL, params)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "region", gotQuery.Get("field"))
}
