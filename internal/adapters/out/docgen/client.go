// Package docgen provides the HTTP client for the external document
// rendering engine. The engine renders one version per call; correction
// cycles send the reviewer's notes, the affected sections and the guardrails
// alongside the accumulated client responses.
package docgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"docflow/internal/core/ports"
	"docflow/internal/pkg/errs"
)

const defaultTimeout = 120 * time.Second

// generateRequest is the engine's render request payload.
type generateRequest struct {
	OrderID           string           `json:"order_id"`
	ServiceCode       string           `json:"service_code"`
	VersionNumber     int              `json:"version_number"`
	RegenerationNotes string           `json:"regeneration_notes,omitempty"`
	AffectedSections  []string         `json:"affected_sections,omitempty"`
	Guardrails        []string         `json:"guardrails,omitempty"`
	ClientResponses   []map[string]any `json:"client_responses,omitempty"`
}

// generateResponse is the engine's render result payload. Content is
// base64 on the wire; encoding/json decodes it into the byte slice.
type generateResponse struct {
	Files []struct {
		Name        string `json:"name"`
		ContentType string `json:"content_type"`
		Content     []byte `json:"content"`
	} `json:"files"`
}

// Client implements DocumentGenerator against the engine's HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rendering engine client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Generate renders one document version. Engine-side rejections and
// transport failures both surface as GenerationError so the caller can
// treat any render problem uniformly.
func (c *Client) Generate(ctx context.Context, req ports.GenerationRequest) (ports.GenerationResult, error) {
	payload, err := json.Marshal(generateRequest{
		OrderID:           req.OrderID.String(),
		ServiceCode:       req.ServiceCode,
		VersionNumber:     req.VersionNumber,
		RegenerationNotes: req.RegenerationNotes,
		AffectedSections:  req.AffectedSections,
		Guardrails:        req.Guardrails,
		ClientResponses:   req.ClientResponses,
	})
	if err != nil {
		return ports.GenerationResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/render", bytes.NewReader(payload))
	if err != nil {
		return ports.GenerationResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.GenerationResult{}, errs.NewGenerationErrorWithCause(req.OrderID.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return ports.GenerationResult{}, errs.NewGenerationErrorWithCause(req.OrderID.String(),
			fmt.Errorf("engine returned %d: %s", resp.StatusCode, body))
	}

	var result generateResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ports.GenerationResult{}, errs.NewGenerationErrorWithCause(req.OrderID.String(), err)
	}
	if len(result.Files) == 0 {
		return ports.GenerationResult{}, errs.NewGenerationErrorWithCause(req.OrderID.String(),
			fmt.Errorf("engine returned no files"))
	}

	files := make([]ports.RenderedFile, 0, len(result.Files))
	for _, f := range result.Files {
		if len(f.Content) == 0 {
			return ports.GenerationResult{}, errs.NewGenerationErrorWithCause(req.OrderID.String(),
				fmt.Errorf("engine returned empty file %q", f.Name))
		}
		files = append(files, ports.RenderedFile{
			Name:        f.Name,
			ContentType: f.ContentType,
			Content:     f.Content,
		})
	}

	return ports.GenerationResult{Files: files}, nil
}
