package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/scout/pkg/recommend"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func newTestClient(t *testing.T, status int, body string) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if e, g := `{"query":"java developer"}`, string(data); e != g {
			t.Errorf("request body: expected %s, got %s", e, g)
		}

		w.WriteHeader(status)
		io.WriteString(w, body)
	}))

	t.Cleanup(server.Close)

	client, err := ParseClient(server.Client(), server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return client
}

func TestClientRecommend(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `[
		{"Assessment Name":"Java Test","URL":"https://x/1","Score":0.87,"Type":["Knowledge & Skills"]},
		{"Assessment Name":"No Type","URL":"https://x/2","Score":0.5},
		{"Assessment Name":"String Type","URL":"https://x/3","Score":0.4,"Type":"Personality & Behavior"},
		{"Assessment Name":"Mixed Type","URL":"https://x/4","Score":0.3,"Type":["Competencies", 12, null]}
	]`)

	items, err := client.Recommend(context.Background(), "java developer")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 4, len(items); e != g {
		t.Fatalf("len(items): expected %d, got %d\n%s", e, g, spew.Sdump(items))
	}

	if e, g := "Java Test", items[0].Name; e != g {
		t.Errorf("items[0].Name: expected %q, got %q", e, g)
	}
	if e, g := 0.87, items[0].Score; e != g {
		t.Errorf("items[0].Score: expected %v, got %v", e, g)
	}
	if e, g := 1, len(items[0].Types); e != g {
		t.Errorf("len(items[0].Types): expected %d, got %d", e, g)
	}
	if e, g := 0, len(items[1].Types); e != g {
		t.Errorf("len(items[1].Types): expected %d, got %d", e, g)
	}
	if e, g := 0, len(items[2].Types); e != g {
		t.Errorf("len(items[2].Types): expected %d, got %d", e, g)
	}
	if e, g := 1, len(items[3].Types); e != g {
		t.Errorf("len(items[3].Types): expected %d, got %d", e, g)
	}
}

func TestClientRecommendNull(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `null`)

	items, err := client.Recommend(context.Background(), "java developer")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if len(items) != 0 {
		t.Errorf("expected no item, got %s", spew.Sdump(items))
	}
}

func TestClientRecommendStatus(t *testing.T) {
	client := newTestClient(t, http.StatusBadRequest, `{"detail":"Query is empty"}`)

	_, err := client.Recommend(context.Background(), "java developer")
	if !errors.Is(err, recommend.ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %+v", err)
	}

	var statusErr *recommend.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a *recommend.StatusError, got %T", err)
	}

	if e, g := http.StatusBadRequest, statusErr.StatusCode; e != g {
		t.Errorf("statusErr.StatusCode: expected %d, got %d", e, g)
	}
}

func TestClientRecommendInvalidJSON(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `Internal Server Error`)

	if _, err := client.Recommend(context.Background(), "java developer"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestClientRecommendTrailingData(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `[] garbage`)

	if _, err := client.Recommend(context.Background(), "java developer"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestClientRecommendNullItem(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `[{"Assessment Name":"Java Test","URL":"https://x/1","Score":0.87}, null]`)

	_, err := client.Recommend(context.Background(), "java developer")
	if !errors.Is(err, recommend.ErrNullItem) {
		t.Fatalf("expected ErrNullItem, got %+v", err)
	}
}

func TestParseClient(t *testing.T) {
	for _, raw := range []string{"", "localhost", "/recommend", "://bad"} {
		if _, err := ParseClient(http.DefaultClient, raw); err == nil {
			t.Errorf("ParseClient(%q): expected an error", raw)
		}
	}
}
