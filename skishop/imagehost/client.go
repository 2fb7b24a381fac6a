// Package imagehost turns transport-scoped photo references into durable
// public URLs by pushing them to an external image hosting service.
package imagehost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m3rciful/skishopbot/core/logger"
	"log/slog"
)

// Config holds image host settings.
type Config struct {
	UploadURL string `yaml:"upload_url" envconfig:"IMAGEHOST_UPLOAD_URL"`
	APIKey    string `yaml:"api_key" envconfig:"IMAGEHOST_API_KEY"`
	Folder    string `yaml:"folder" envconfig:"IMAGEHOST_FOLDER"`
	// TimeoutSeconds bounds a single upload call; 0 -> default
	TimeoutSeconds int `yaml:"timeout_seconds" envconfig:"IMAGEHOST_TIMEOUT_SECONDS"`
}

const defaultUploadTimeout = 30 * time.Second

// Validate checks required fields.
func (c Config) Validate() error {
	if strings.TrimSpace(c.UploadURL) == "" {
		return fmt.Errorf("imagehost upload_url is required")
	}
	return nil
}

// Client uploads images by source URL.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient builds a Client with a dedicated HTTP client.
func NewClient(cfg Config) *Client {
	timeout := defaultUploadTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload submits the image at sourceURL to the host and returns its durable
// public URL. One attempt only; a failed photo is reported to the caller and
// never retried within the same commit.
func (c *Client) Upload(ctx context.Context, sourceURL string) (string, error) {
	form := url.Values{}
	form.Set("file", sourceURL)
	form.Set("public_id", uuid.NewString())
	if c.cfg.Folder != "" {
		form.Set("folder", c.cfg.Folder)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.UploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read upload response: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := parsed.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("upload rejected: %s", msg)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	logger.SVCMedia.Debug("image uploaded",
		slog.String("url", parsed.SecureURL),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return parsed.SecureURL, nil
}
