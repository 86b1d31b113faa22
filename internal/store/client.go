package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"expense-bills-backend/internal/models"
)

// Client talks to the bills API over HTTP. A non-2xx response becomes
// an error whose message is "Erreur <status>", which the views render
// verbatim.
type Client struct {
	baseURL    string
	email      string
	httpClient *http.Client
}

// NewClient builds a store client for one employee. email scopes the
// list call; pass "" for an unscoped client.
func NewClient(baseURL, email string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		email:      email,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Bills() BillsClient {
	return &billsClient{c: c}
}

type billsClient struct {
	c *Client
}

func (b *billsClient) List(ctx context.Context) ([]models.Bill, error) {
	endpoint := b.c.baseURL + "/api/bills"
	if b.c.email != "" {
		endpoint += "?email=" + url.QueryEscape(b.c.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building list request: %w", err)
	}

	var bills []models.Bill
	if err := b.c.do(req, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (b *billsClient) Create(ctx context.Context, p CreatePayload) (*FileRef, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, p.FileName))
	if p.ContentType != "" {
		header.Set("Content-Type", p.ContentType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("building upload payload: %w", err)
	}
	if p.Content != nil {
		if _, err := io.Copy(part, p.Content); err != nil {
			return nil, fmt.Errorf("reading proof file: %w", err)
		}
	}
	if err := w.WriteField("email", p.Email); err != nil {
		return nil, fmt.Errorf("building upload payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("building upload payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.c.baseURL+"/api/bills", &body)
	if err != nil {
		return nil, fmt.Errorf("building create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var ref FileRef
	if err := b.c.do(req, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

func (b *billsClient) Update(ctx context.Context, p UpdatePayload) (*models.Bill, error) {
	endpoint := b.c.baseURL + "/api/bills/" + url.PathEscape(p.Selector)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(p.Data))
	if err != nil {
		return nil, fmt.Errorf("building update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var bill models.Bill
	if err := b.c.do(req, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling bills API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("Erreur %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding bills API response: %w", err)
	}
	return nil
}
