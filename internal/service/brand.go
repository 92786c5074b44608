package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kapu/brandlens-go/pkg/errors"
	"go.uber.org/zap"
)

// UpdateDescriptionRequest is the PUT body for a brand description update.
type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

// UpdateDescriptionResponse is the server's success payload.
type UpdateDescriptionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BrandID string `json:"brand_id,omitempty"`
}

type errorDetail struct {
	Detail string `json:"detail"`
}

// BrandClient wraps the brand REST API. It holds only its base URL and an
// injected http.Client, so tests can point it at an httptest server.
type BrandClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewBrandClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *BrandClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &BrandClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// UpdateDescription issues a single PUT {base}/{brandId}/description with the
// trimmed description. One request, no retry: a non-2xx status fails with the
// status code and the server's detail message, and a 2xx payload reporting
// success=false fails with the payload's message.
func (c *BrandClient) UpdateDescription(ctx context.Context, brandID, description string) (*UpdateDescriptionResponse, error) {
	if strings.TrimSpace(brandID) == "" {
		return nil, errors.NewValidationError("brand ID must not be empty", "brandId", brandID)
	}

	reqBody := UpdateDescriptionRequest{Description: strings.TrimSpace(description)}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.NewAPIError("failed to marshal request", 400, map[string]any{
			"brand_id": brandID,
		}).WithCause(err)
	}

	url := fmt.Sprintf("%s/%s/description", c.baseURL, brandID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, errors.NewAPIError("failed to create request", 500, map[string]any{
			"url": url,
		}).WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Brand description update request failed",
			zap.Error(err),
			zap.String("brand_id", brandID),
		)
		return nil, errors.NewAPIError("request failed", 500, map[string]any{
			"url": url,
		}).WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewAPIError("failed to read response", 500, map[string]any{
			"url": url,
		}).WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := decodeDetail(body)
		c.logger.Warn("Brand API returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("brand_id", brandID),
			zap.String("detail", detail),
		)
		return nil, errors.NewAPIError(
			fmt.Sprintf("brand API error: %d: %s", resp.StatusCode, detail),
			resp.StatusCode,
			map[string]any{
				"url":      url,
				"brand_id": brandID,
			},
		)
	}

	var result UpdateDescriptionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.NewAPIError("failed to decode response", 500, map[string]any{
			"url": url,
		}).WithCause(err)
	}

	if !result.Success {
		message := result.Message
		if message == "" {
			message = "failed to update brand description"
		}
		return nil, errors.NewAPIError(message, resp.StatusCode, map[string]any{
			"brand_id": brandID,
		})
	}

	c.logger.Info("Brand description updated",
		zap.String("brand_id", brandID),
	)
	return &result, nil
}

// decodeDetail pulls the detail string out of an error body, falling back to
// a generic message when the body is not the expected shape.
func decodeDetail(body []byte) string {
	var payload errorDetail
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return "failed to update brand description"
	}
	return payload.Detail
}
