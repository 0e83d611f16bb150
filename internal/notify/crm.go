package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chrmotors/complaint-service/internal/model"
)

// Forwarder pushes records to the external CRM. Implementations are
// best-effort: callers log the returned error and carry on.
type Forwarder interface {
	ForwardComplaint(ctx context.Context, c *model.Complaint) error
	ForwardTestDrive(ctx context.Context, t *model.TestDriveRequest) error
}

// CRMClient posts records to the CRM ingestion endpoint. If baseURL is empty
// every call is a no-op.
type CRMClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewCRMClient(baseURL, apiKey string) *CRMClient {
	return &CRMClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *CRMClient) ForwardComplaint(ctx context.Context, rec *model.Complaint) error {
	return c.post(ctx, "/ingest/complaint", rec)
}

func (c *CRMClient) ForwardTestDrive(ctx context.Context, rec *model.TestDriveRequest) error {
	return c.post(ctx, "/ingest/test-drive", rec)
}

func (c *CRMClient) post(ctx context.Context, path string, payload interface{}) error {
	if c.baseURL == "" {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("crm: marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crm: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crm: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("crm: status %d", resp.StatusCode)
	}
	return nil
}
