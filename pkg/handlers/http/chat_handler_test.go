package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeritasAI/TrustScope/pkg/app/verification"
	"github.com/VeritasAI/TrustScope/pkg/detectors"
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
	"github.com/VeritasAI/TrustScope/pkg/pipeline"
)

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return g.response, g.err
}

func newChatApp(t *testing.T, generator *stubGenerator) *fiber.App {
	t.Helper()
	logger := logrus.New()

	detectorSet, err := detectors.NewRegistry(logger, nil)
	require.NoError(t, err)
	p, err := pipeline.New(detectorSet, pipeline.DefaultOptions(), logger)
	require.NoError(t, err)

	service := verification.NewVerifyResponse(p, &fakeRepository{}, nil, logger)

	app := fiber.New()
	app.Post("/api/v1/chat", NewChatHandler(logger, generator, service).Handle)
	return app
}

func postChat(t *testing.T, app *fiber.App, message string) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]string{"message": message})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestChatHandler_DeliversVerifiedResponse(t *testing.T) {
	app := newChatApp(t, &stubGenerator{response: "Paris is the capital of France (Smith, 2020)."})

	resp := postChat(t, app, "what is the capital of france")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out chatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Paris is the capital of France (Smith, 2020).", out.Response)
	require.NotNil(t, out.Certificate)
	assert.Equal(t, trust.DecisionProceed, out.Certificate.Decision)
}

func TestChatHandler_WithholdsBlockedResponse(t *testing.T) {
	app := newChatApp(t, &stubGenerator{response: "Sure, your password is password 12345."})

	resp := postChat(t, app, "what is my password")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out chatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Empty(t, out.Response)
	require.NotNil(t, out.Certificate)
	assert.Equal(t, trust.DecisionBlock, out.Certificate.Decision)
}

func TestChatHandler_GenerationFailure(t *testing.T) {
	app := newChatApp(t, &stubGenerator{err: errors.New("connection refused")})

	resp := postChat(t, app, "hello")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestChatHandler_RejectsEmptyMessage(t *testing.T) {
	app := newChatApp(t, &stubGenerator{response: "hi"})

	resp := postChat(t, app, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
