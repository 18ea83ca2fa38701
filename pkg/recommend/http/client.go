package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/scout/pkg/recommend"
	"github.com/pkg/errors"
)

type Client struct {
	client  *http.Client
	baseURL *url.URL
}

// Recommend implements recommend.Client.
func (c *Client) Recommend(ctx context.Context, query string) ([]recommend.Item, error) {
	endpoint := c.baseURL.JoinPath(recommend.Path)

	body, err := json.Marshal(recommend.Request{Query: query})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Content-Type", "application/json")

	slog.DebugContext(ctx, "requesting recommendations", slog.String("url", endpoint.String()))

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		data, err := io.ReadAll(io.LimitReader(res.Body, 4e+3))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return nil, errors.WithStack(&recommend.StatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       string(data),
		})
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var items []recommend.Item

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "could not decode recommendations")
	}

	return items, nil
}

func NewClient(client *http.Client, baseURL *url.URL) *Client {
	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

func ParseClient(client *http.Client, rawBaseURL string) (*Client, error) {
	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint '%s'", rawBaseURL)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("invalid endpoint '%s': expected an absolute url", rawBaseURL)
	}

	return NewClient(client, baseURL), nil
}

var _ recommend.Client = &Client{}
