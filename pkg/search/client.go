package search

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/bornholm/scout/pkg/recommend"
	"github.com/bornholm/scout/pkg/ui"
	"github.com/pkg/errors"
)

var ErrBusy = errors.New("a query is already in flight")

// Client requests recommendations for the queries entered in a view and
// renders the outcome back into it.
type Client struct {
	recommender recommend.Client
	view        ui.View
	busy        atomic.Bool
}

// Trigger submits the current content of the view input.
func (c *Client) Trigger(ctx context.Context) error {
	return c.Submit(ctx, c.view.Input())
}

// Submit requests recommendations for the given raw input and renders them.
// A blank input is ignored. On failure the view shows a fixed error message
// and the error is returned.
func (c *Client) Submit(ctx context.Context, rawInput string) error {
	query, ok := Normalize(rawInput)
	if !ok {
		return nil
	}

	release, err := c.acquire()
	if err != nil {
		return errors.WithStack(err)
	}

	defer release()

	slog.DebugContext(ctx, "submitting query", slog.String("query", query))

	items, err := c.recommender.Recommend(ctx, query)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve recommendations", slog.String("query", query), slog.Any("error", err))
		c.view.ShowMessage(ui.MessageKindError, ui.MessageError)
		return errors.Wrap(err, "could not retrieve recommendations")
	}

	c.Render(items)

	return nil
}

// Render replaces the results of the view with one card per item, in order.
func (c *Client) Render(items []recommend.Item) {
	if len(items) == 0 {
		c.view.ShowMessage(ui.MessageKindInfo, ui.MessageNoResults)
		return
	}

	c.view.SetHeaderVisible(true)
	c.view.SetResultCount(ui.ResultCountText(len(items)))

	for _, item := range items {
		c.view.AppendCard(ui.NewCard(item))
	}
}

// acquire switches the view to its busy state. The returned func restores
// the idle state.
func (c *Client) acquire() (func(), error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	c.view.ClearResults()
	c.view.SetLoading(true)
	c.view.SetHeaderVisible(false)
	c.view.SetTriggerEnabled(false)

	return func() {
		c.view.SetLoading(false)
		c.view.SetTriggerEnabled(true)
		c.busy.Store(false)
	}, nil
}

// Normalize trims the raw input and reports whether a query remains.
func Normalize(rawInput string) (string, bool) {
	query := strings.TrimSpace(rawInput)
	return query, query != ""
}

func NewClient(recommender recommend.Client, view ui.View) *Client {
	return &Client{
		recommender: recommender,
		view:        view,
	}
}
