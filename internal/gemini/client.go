package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agbru/brandgen/internal/logging"
)

// Service defaults.
const (
	DefaultBaseURL       = "https://generativelanguage.googleapis.com"
	DefaultIdentityModel = "gemini-2.5-flash"
	DefaultImageModel    = "imagen-4.0-generate-001"
	DefaultTimeout       = 2 * time.Minute
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Config holds the connection settings of a Client.
type Config struct {
	APIKey        string
	BaseURL       string
	IdentityModel string
	ImageModel    string
	// HTTPClient defaults to a client with DefaultTimeout.
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client calls the text and image models of the generative service.
type Client struct {
	apiKey        string
	baseURL       string
	identityModel string
	imageModel    string
	http          *http.Client
	logger        logging.Logger
}

// New returns a Client for cfg, filling unset fields with defaults.
func New(cfg Config) *Client {
	c := &Client{
		apiKey:        cfg.APIKey,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		identityModel: cfg.IdentityModel,
		imageModel:    cfg.ImageModel,
		http:          cfg.HTTPClient,
		logger:        cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.identityModel == "" {
		c.identityModel = DefaultIdentityModel
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: DefaultTimeout}
	}
	if c.logger == nil {
		c.logger = logging.NewNopLogger()
	}
	return c
}

// APIError is a non-200 response from the service. Its message is the one the
// service reported, so that it reaches the user unchanged.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("service returned %d", e.StatusCode)
}

// errorEnvelope is the error body returned by the service.
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// post sends body as JSON to the model method and decodes the response into
// out.
func (c *Client) post(ctx context.Context, model, method string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:%s", c.baseURL, model, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", model, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("service call completed",
		logging.String("model", model),
		logging.String("method", method),
		logging.Int("status", resp.StatusCode),
		logging.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", model, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error.Message != "" {
		apiErr.Message = env.Error.Message
		apiErr.Status = env.Error.Status
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}
