package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/config"
	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	index      string
	logger     *zap.Logger
}

// NewSearchClient builds the document index client. Only the import
// pipeline writes here; request handling never touches the index.
func NewSearchClient(cfg *config.SearchConfig, logger *zap.Logger) repository.SearchRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		index:   cfg.IndexName,
		logger:  logger,
	}
}

func (c *client) IndexBusinesses(ctx context.Context, docs []domain.BusinessDocument) error {
	if len(docs) == 0 {
		return nil
	}

	body, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to marshal documents: %w", err)
	}

	endpoint := fmt.Sprintf("%s/indexes/%s/documents", c.baseURL, c.index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Search index returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return fmt.Errorf("search index error: status %d", resp.StatusCode)
	}

	c.logger.Debug("Documents indexed",
		zap.String("index", c.index),
		zap.Int("count", len(docs)))
	return nil
}

func (c *client) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	endpoint := fmt.Sprintf("%s/indexes/%s/documents/%s", c.baseURL, c.index, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("search index error: status %d", resp.StatusCode)
	}

	return nil
}
