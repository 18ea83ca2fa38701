package dom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/scout/pkg/badge"
	"github.com/bornholm/scout/pkg/ui"
	"github.com/pkg/errors"
)

func TestNewViewMissingElements(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><input id="queryInput"><div id="results"></div></body></html>`))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	_, err = NewView(doc)
	if err == nil {
		t.Fatal("expected an error")
	}

	for _, id := range []string{IDSearchButton, IDLoading, IDResultsHeader, IDResultCount} {
		if !strings.Contains(err.Error(), "#"+id+":") {
			t.Errorf("expected error to mention '#%s', got: %s", id, err.Error())
		}
	}

	if strings.Contains(err.Error(), "#"+IDResults+":") {
		t.Errorf("expected error to not mention '#%s', got: %s", IDResults, err.Error())
	}
}

func TestViewState(t *testing.T) {
	view, err := DefaultView()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc := view.Document()

	view.SetInput("  java developer  ")
	if e, g := "  java developer  ", view.Input(); e != g {
		t.Errorf("view.Input(): expected %q, got %q", e, g)
	}

	view.SetTriggerEnabled(false)
	if _, disabled := doc.Find("#" + IDSearchButton).Attr("disabled"); !disabled {
		t.Error("expected trigger to be disabled")
	}

	view.SetTriggerEnabled(true)
	if _, disabled := doc.Find("#" + IDSearchButton).Attr("disabled"); disabled {
		t.Error("expected trigger to be enabled")
	}

	view.SetLoading(true)
	if doc.Find("#" + IDLoading).HasClass(ClassHidden) {
		t.Error("expected loading indicator to be visible")
	}

	view.SetLoading(false)
	if !doc.Find("#" + IDLoading).HasClass(ClassHidden) {
		t.Error("expected loading indicator to be hidden")
	}

	view.ShowMessage(ui.MessageKindError, ui.MessageError)
	if e, g := ui.MessageError, doc.Find("#"+IDResults+" > p.error").Text(); e != g {
		t.Errorf("error message: expected %q, got %q", e, g)
	}

	view.ClearResults()
	if e, g := 0, doc.Find("#"+IDResults).Children().Length(); e != g {
		t.Errorf("results children: expected %d, got %d", e, g)
	}
}

func TestViewAppendCard(t *testing.T) {
	view, err := DefaultView()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	view.SetHeaderVisible(true)
	view.SetResultCount(ui.ResultCountText(1))
	view.AppendCard(ui.Card{
		Heading: "Leadership <Scan>",
		Badges: []ui.Badge{
			{Label: "Personality & Behavior", Kind: badge.KindSoft},
			{Label: "Knowledge & Skills", Kind: badge.KindDefault},
		},
		Percentage: 50,
		URL:        "https://x/2",
	})

	cards := view.Document().Find("#" + IDResults + " > .card")
	if e, g := 1, cards.Length(); e != g {
		t.Fatalf("cards: expected %d, got %d", e, g)
	}

	if e, g := "Leadership <Scan>", cards.Find("h3").Text(); e != g {
		t.Errorf("heading: expected %q, got %q", e, g)
	}

	if e, g := "Personality & Behavior", cards.Find(".badge.soft").Text(); e != g {
		t.Errorf("soft badge: expected %q, got %q", e, g)
	}

	if e, g := "Knowledge & Skills", cards.Find(".badge:not(.soft)").Text(); e != g {
		t.Errorf("default badge: expected %q, got %q", e, g)
	}

	if e, g := "Relevance Score: 50%", cards.Find(".score").Text(); e != g {
		t.Errorf("score: expected %q, got %q", e, g)
	}

	link := cards.Find("a")
	if e, g := "https://x/2", link.AttrOr("href", ""); e != g {
		t.Errorf("link href: expected %q, got %q", e, g)
	}
	if e, g := "_blank", link.AttrOr("target", ""); e != g {
		t.Errorf("link target: expected %q, got %q", e, g)
	}

	markdown, err := view.Markdown()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, s := range []string{"Found 1 relevant assessments", "Relevance Score: 50%", "(https://x/2)"} {
		if !strings.Contains(markdown, s) {
			t.Errorf("expected markdown to contain %q, got:\n%s", s, markdown)
		}
	}
}
