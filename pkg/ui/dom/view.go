package dom

import (
	"bytes"
	_ "embed"
	"html"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/scout/pkg/badge"
	"github.com/bornholm/scout/pkg/ui"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

//go:embed page.html
var defaultPage []byte

const ClassHidden = "hidden"

// Identifiers of the page elements bound by a View.
const (
	IDQueryInput    = "queryInput"
	IDSearchButton  = "searchBtn"
	IDResults       = "results"
	IDLoading       = "loading"
	IDResultsHeader = "resultsHeader"
	IDResultCount   = "resultCount"
)

var ErrMissingElement = errors.New("missing element")

// View binds the page elements of an HTML document.
type View struct {
	doc           *goquery.Document
	queryInput    *goquery.Selection
	searchButton  *goquery.Selection
	results       *goquery.Selection
	loading       *goquery.Selection
	resultsHeader *goquery.Selection
	resultCount   *goquery.Selection
}

// Input implements ui.View.
func (v *View) Input() string {
	if goquery.NodeName(v.queryInput) == "textarea" {
		return v.queryInput.Text()
	}

	return v.queryInput.AttrOr("value", "")
}

// SetInput writes the query back into the input element.
func (v *View) SetInput(query string) {
	if goquery.NodeName(v.queryInput) == "textarea" {
		v.queryInput.SetText(query)
		return
	}

	v.queryInput.SetAttr("value", query)
}

// SetTriggerEnabled implements ui.View.
func (v *View) SetTriggerEnabled(enabled bool) {
	if enabled {
		v.searchButton.RemoveAttr("disabled")
		return
	}

	v.searchButton.SetAttr("disabled", "")
}

// SetLoading implements ui.View.
func (v *View) SetLoading(visible bool) {
	setVisible(v.loading, visible)
}

// SetHeaderVisible implements ui.View.
func (v *View) SetHeaderVisible(visible bool) {
	setVisible(v.resultsHeader, visible)
}

// SetResultCount implements ui.View.
func (v *View) SetResultCount(text string) {
	v.resultCount.SetText(text)
}

// ClearResults implements ui.View.
func (v *View) ClearResults() {
	v.results.Empty()
}

// ShowMessage implements ui.View.
func (v *View) ShowMessage(kind ui.MessageKind, text string) {
	v.results.Empty()

	if kind == ui.MessageKindError {
		v.results.AppendHtml(`<p class="error">` + html.EscapeString(text) + `</p>`)
		return
	}

	v.results.AppendHtml(`<p>` + html.EscapeString(text) + `</p>`)
}

// AppendCard implements ui.View.
func (v *View) AppendCard(card ui.Card) {
	var sb strings.Builder

	sb.WriteString(`<div class="card"><div><h3>`)
	sb.WriteString(html.EscapeString(card.Heading))
	sb.WriteString(`</h3><div class="badges">`)

	for _, b := range card.Badges {
		if b.Kind == badge.KindSoft {
			sb.WriteString(`<span class="badge soft">`)
		} else {
			sb.WriteString(`<span class="badge">`)
		}
		sb.WriteString(html.EscapeString(b.Label))
		sb.WriteString(`</span>`)
	}

	sb.WriteString(`</div></div><div><div class="score">`)
	sb.WriteString(html.EscapeString(card.ScoreText()))
	sb.WriteString(`</div><a href="`)
	sb.WriteString(html.EscapeString(card.URL))
	sb.WriteString(`" target="_blank" rel="noopener">`)
	sb.WriteString(html.EscapeString(ui.LinkLabel))
	sb.WriteString(`</a></div></div>`)

	v.results.AppendHtml(sb.String())
}

// Document returns the bound document.
func (v *View) Document() *goquery.Document {
	return v.doc
}

// Render writes the full HTML document.
func (v *View) Render(w io.Writer) error {
	data, err := v.doc.Html()
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := io.WriteString(w, data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Markdown converts the content of the results summary and the results area.
func (v *View) Markdown() (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)

	var sb strings.Builder

	if !v.resultsHeader.HasClass(ClassHidden) {
		sb.WriteString(v.resultCount.Text())
		sb.WriteString("\n\n")
	}

	results, err := v.results.Html()
	if err != nil {
		return "", errors.WithStack(err)
	}

	markdown, err := conv.ConvertString(results)
	if err != nil {
		return "", errors.WithStack(err)
	}

	sb.WriteString(markdown)

	return strings.TrimSpace(sb.String()), nil
}

func setVisible(sel *goquery.Selection, visible bool) {
	if visible {
		sel.RemoveClass(ClassHidden)
		return
	}

	sel.AddClass(ClassHidden)
}

// NewView binds the page elements of the given document. The returned error
// lists every missing element.
func NewView(doc *goquery.Document) (*View, error) {
	var err error

	find := func(id string) *goquery.Selection {
		sel := doc.Find("#" + id).First()
		if sel.Length() == 0 {
			err = multierror.Append(err, errors.Wrapf(ErrMissingElement, "#%s", id))
		}
		return sel
	}

	view := &View{
		doc:           doc,
		queryInput:    find(IDQueryInput),
		searchButton:  find(IDSearchButton),
		results:       find(IDResults),
		loading:       find(IDLoading),
		resultsHeader: find(IDResultsHeader),
		resultCount:   find(IDResultCount),
	}

	if err != nil {
		return nil, err
	}

	return view, nil
}

// ParseView reads an HTML page and binds its elements.
func ParseView(r io.Reader) (*View, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	view, err := NewView(doc)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return view, nil
}

// DefaultPage returns a copy of the embedded page.
func DefaultPage() []byte {
	return bytes.Clone(defaultPage)
}

// DefaultView binds a fresh copy of the embedded page.
func DefaultView() (*View, error) {
	return ParseView(bytes.NewReader(defaultPage))
}

var _ ui.View = &View{}
