package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/infra/httpx"
	"github.com/VeritasAI/TrustScope/pkg/infra/providers"
)

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	breaker    httpx.CircuitBreaker
	logger     logrus.FieldLogger
}

// NewClient talks to a local ollama daemon. Calls run through the
// circuit breaker so a dead daemon fails fast instead of piling up
// timeouts.
func NewClient(
	baseURL string,
	model string,
	timeout time.Duration,
	breaker httpx.CircuitBreaker,
	logger logrus.FieldLogger,
) providers.Generator {
	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
		logger:     logger,
	}
}

func (c *client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode generate request: %w", err)
	}

	var generated string
	err = c.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(
			ctx,
			http.MethodPost,
			c.baseURL+"/api/generate",
			bytes.NewReader(body),
		)
		if err != nil {
			return fmt.Errorf("failed to build generate request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("generate request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("generate request returned %d: %s", resp.StatusCode, string(payload))
		}

		var out generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return fmt.Errorf("failed to decode generate response: %w", err)
		}
		generated = out.Response
		return nil
	})
	if err != nil {
		c.logger.WithError(err).WithField("model", c.model).Error("generation failed")
		return "", err
	}

	return generated, nil
}
