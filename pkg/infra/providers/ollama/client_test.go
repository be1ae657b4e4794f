package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeritasAI/TrustScope/pkg/infra/httpx"
)

func TestClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req.Model)
		assert.Equal(t, "hello", req.Prompt)
		assert.False(t, req.Stream)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(generateResponse{
			Response: "Hi there.",
		}))
	}))
	defer server.Close()

	breaker := httpx.NewCircuitBreaker("ollama", time.Second, 3)
	generator := NewClient(server.URL, "llama3", time.Second, breaker, logrus.New())

	out, err := generator.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there.", out)
}

func TestClient_GenerateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	breaker := httpx.NewCircuitBreaker("ollama", time.Second, 3)
	generator := NewClient(server.URL, "llama3", time.Second, breaker, logrus.New())

	_, err := generator.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
