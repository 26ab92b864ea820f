package docgen_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"docflow/internal/adapters/out/docgen"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/ports"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate_Success(t *testing.T) {
	content := []byte("%PDF-1.7 rendered")

	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/render", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"files": []map[string]any{
				{
					"name":         "certificate.pdf",
					"content_type": "application/pdf",
					"content":      base64.StdEncoding.EncodeToString(content),
				},
			},
		})
	}))
	defer server.Close()

	client := docgen.NewClient(server.URL)
	orderID := kernel.NewUUID()

	result, err := client.Generate(context.Background(), ports.GenerationRequest{
		OrderID:           orderID,
		ServiceCode:       "translation-standard",
		VersionNumber:     2,
		RegenerationNotes: "fix the header",
		AffectedSections:  []string{"header"},
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, "certificate.pdf", result.Files[0].Name)
	assert.Equal(t, "application/pdf", result.Files[0].ContentType)
	assert.Equal(t, content, result.Files[0].Content)

	assert.Equal(t, orderID.String(), received["order_id"])
	assert.Equal(t, "translation-standard", received["service_code"])
	assert.Equal(t, float64(2), received["version_number"])
	assert.Equal(t, "fix the header", received["regeneration_notes"])
}

func TestClient_Generate_EngineRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unsupported service code", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := docgen.NewClient(server.URL)

	_, err := client.Generate(context.Background(), ports.GenerationRequest{
		OrderID:       kernel.NewUUID(),
		ServiceCode:   "unknown",
		VersionNumber: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrGeneration)
	assert.Contains(t, err.Error(), "422")
}

func TestClient_Generate_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files": []}`))
	}))
	defer server.Close()

	client := docgen.NewClient(server.URL)

	_, err := client.Generate(context.Background(), ports.GenerationRequest{
		OrderID:       kernel.NewUUID(),
		ServiceCode:   "translation-standard",
		VersionNumber: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrGeneration)
}

func TestClient_Generate_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client := docgen.NewClient(server.URL)

	_, err := client.Generate(context.Background(), ports.GenerationRequest{
		OrderID:       kernel.NewUUID(),
		ServiceCode:   "translation-standard",
		VersionNumber: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrGeneration)
}
