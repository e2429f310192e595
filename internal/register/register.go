// Package register pushes the resources of a seed file to a running
// resource-api over HTTP, one POST per entry.
package register

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Jeomhps/resource-api/internal/store"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Out     io.Writer
	Err     io.Writer
}

// NewClient returns a client with a 15s timeout writing progress to out/errOut.
func NewClient(baseURL string, out, errOut io.Writer) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Out:     out,
		Err:     errOut,
	}
}

// Run posts every entry and keeps going on failure. It returns the number
// of created resources and an error if any entry failed.
func (c *Client) Run(ctx context.Context, entries []store.SeedEntry) (int, error) {
	created, failed := 0, 0
	for _, e := range entries {
		r, err := c.post(ctx, e)
		if err != nil {
			failed++
			fmt.Fprintf(c.Err, "Failed to add %s: %v\n", e.Name, err)
			continue
		}
		created++
		fmt.Fprintf(c.Out, "Added %s (id %d)\n", r.Name, r.ID)
	}
	if failed > 0 {
		return created, fmt.Errorf("%d of %d resources failed", failed, len(entries))
	}
	return created, nil
}

func (c *Client) post(ctx context.Context, e store.SeedEntry) (store.Resource, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return store.Resource{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/resources", bytes.NewReader(b))
	if err != nil {
		return store.Resource{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return store.Resource{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return store.Resource{}, fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var r store.Resource
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return store.Resource{}, err
	}
	return r, nil
}
