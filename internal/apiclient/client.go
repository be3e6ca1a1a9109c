package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// MethodOverrideField is the form field Laravel-style backends read to treat
// a multipart POST as another verb. Updates that carry a file upload use it
// because PUT cannot express multipart bodies on that side.
const MethodOverrideField = "_method"

// Client is the HTTP client for the rental REST API. It is pre-bound to a
// base URL; authenticated calls attach the caller's bearer token. There is
// no retry and no timeout policy beyond the transport default -- a failed
// call returns an error and the caller decides what to show.
type Client struct {
	baseURL string
	http    *http.Client
}

// Upload is a staged file for a multipart submission.
type Upload struct {
	FieldName string
	Filename  string
	Content   io.Reader
}

// New creates a client bound to baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// NewWithHTTPClient allows injecting a transport (used by tests).
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	if hc != nil {
		c.http = hc
	}
	return c
}

// Get issues a GET and decodes the JSON response into out (out may be nil).
func (c *Client) Get(ctx context.Context, path, token string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, token, out)
}

// PostJSON issues a POST with a JSON body.
func (c *Client) PostJSON(ctx context.Context, path, token string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, token, body, out)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path, token string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, token, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, token, nil)
}

// PostMultipart issues a POST with form fields and an optional file. The
// caller adds the method override field when the submission is an update.
func (c *Client) PostMultipart(ctx context.Context, path, token string, fields url.Values, file *Upload, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, values := range fields {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				return err
			}
		}
	}
	if file != nil && file.Content != nil {
		name := file.FieldName
		if name == "" {
			name = "image"
		}
		fw, err := w.CreateFormFile(name, file.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(fw, file.Content); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, token, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, token, out)
}

func (c *Client) do(req *http.Request, token string, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return newError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
