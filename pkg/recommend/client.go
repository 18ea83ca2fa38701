package recommend

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// Path is the fixed endpoint path of the recommendation server.
const Path = "/recommend"

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNullItem         = errors.New("null recommendation item")
)

type Client interface {
	Recommend(ctx context.Context, query string) ([]Item, error)
}

// Request is the body posted to the recommendation endpoint.
type Request struct {
	Query string `json:"query"`
}

// Item is a single assessment returned by the recommendation server.
type Item struct {
	Name  string   `json:"Assessment Name" yaml:"name" jsonschema:"required,description=Display title of the assessment"`
	URL   string   `json:"URL" yaml:"url" jsonschema:"required,description=Link to the assessment details"`
	Score float64  `json:"Score" yaml:"score" jsonschema:"required,minimum=0,maximum=1,description=Relevance of the assessment"`
	Types []string `json:"Type,omitempty" yaml:"types,omitempty" jsonschema:"description=Classification tags of the assessment"`
}

// UnmarshalJSON accepts any "Type" value. Anything other than a list
// decodes to no tags, and non-string list entries are skipped. A null item
// is rejected.
func (i *Item) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return errors.WithStack(ErrNullItem)
	}

	var raw struct {
		Name  string          `json:"Assessment Name"`
		URL   string          `json:"URL"`
		Score float64         `json:"Score"`
		Types json.RawMessage `json:"Type"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithStack(err)
	}

	*i = Item{
		Name:  raw.Name,
		URL:   raw.URL,
		Score: raw.Score,
	}

	var entries []any
	if err := json.Unmarshal(raw.Types, &entries); err != nil {
		return nil
	}

	for _, e := range entries {
		if s, ok := e.(string); ok {
			i.Types = append(i.Types, s)
		}
	}

	return nil
}

type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return "unexpected response http status " + e.Status + ": " + e.Body
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
