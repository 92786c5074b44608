package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/kapu/brandlens-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpdateDescriptionSendsTrimmedBody(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(UpdateDescriptionResponse{
			Success: true,
			Message: "updated",
			BrandID: "b1",
		})
	}))
	defer srv.Close()

	client := NewBrandClient(srv.URL, srv.Client(), zap.NewNop())
	resp, err := client.UpdateDescription(context.Background(), "b1", "  hello  ")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/b1/description", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"description":"hello"}`, string(gotBody))
	assert.True(t, resp.Success)
	assert.Equal(t, "b1", resp.BrandID)
}

func TestUpdateDescriptionHTTPErrorCarriesStatusAndDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"not found"}`))
	}))
	defer srv.Close()

	client := NewBrandClient(srv.URL, srv.Client(), zap.NewNop())
	resp, err := client.UpdateDescription(context.Background(), "b1", "hello")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "not found")

	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestUpdateDescriptionUnparseableErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	client := NewBrandClient(srv.URL, srv.Client(), zap.NewNop())
	_, err := client.UpdateDescription(context.Background(), "b1", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "failed to update brand description")
}

func TestUpdateDescriptionApplicationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"message":"bad brand"}`))
	}))
	defer srv.Close()

	client := NewBrandClient(srv.URL, srv.Client(), zap.NewNop())
	resp, err := client.UpdateDescription(context.Background(), "b1", "hello")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "bad brand", err.Error())
}

func TestUpdateDescriptionApplicationFailureWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	client := NewBrandClient(srv.URL, srv.Client(), zap.NewNop())
	_, err := client.UpdateDescription(context.Background(), "b1", "hello")

	require.Error(t, err)
	assert.Equal(t, "failed to update brand description", err.Error())
}

func TestUpdateDescriptionEmptyBrandID(t *testing.T) {
	client := NewBrandClient("http://localhost", nil, zap.NewNop())

	_, err := client.UpdateDescription(context.Background(), "", "hello")
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = client.UpdateDescription(context.Background(), "   ", "hello")
	assert.Error(t, err)
}

func TestUpdateDescriptionSingleRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"detail":"unavailable"}`))
	}))
	defer srv.Close()

	client := NewBrandClient(srv.URL, srv.Client(), zap.NewNop())
	_, err := client.UpdateDescription(context.Background(), "b1", "hello")

	require.Error(t, err)
	assert.Equal(t, 1, requests, "the client issues exactly one request, no retry")
}
