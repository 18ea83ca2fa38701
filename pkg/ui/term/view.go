package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/bornholm/scout/pkg/badge"
	"github.com/bornholm/scout/pkg/ui"
)

// View prints cards on out and transient status lines on status.
type View struct {
	query  string
	out    io.Writer
	status io.Writer
	cards  int
}

func (v *View) Input() string {
	return v.query
}

// SetTriggerEnabled implements ui.View.
func (v *View) SetTriggerEnabled(enabled bool) {}

// SetLoading implements ui.View.
func (v *View) SetLoading(visible bool) {
	if visible {
		fmt.Fprintln(v.status, "Searching...")
	}
}

// SetHeaderVisible implements ui.View.
func (v *View) SetHeaderVisible(visible bool) {}

// SetResultCount implements ui.View.
func (v *View) SetResultCount(text string) {
	fmt.Fprintf(v.out, "%s\n\n", text)
}

// ClearResults implements ui.View.
func (v *View) ClearResults() {
	v.cards = 0
}

// ShowMessage implements ui.View.
func (v *View) ShowMessage(kind ui.MessageKind, text string) {
	if kind == ui.MessageKindError {
		fmt.Fprintln(v.status, text)
		return
	}

	fmt.Fprintln(v.out, text)
}

// AppendCard implements ui.View.
func (v *View) AppendCard(card ui.Card) {
	v.cards++

	fmt.Fprintf(v.out, "%d. %s\n", v.cards, card.Heading)

	if len(card.Badges) > 0 {
		badges := make([]string, 0, len(card.Badges))
		for _, b := range card.Badges {
			if b.Kind == badge.KindSoft {
				badges = append(badges, "("+b.Label+")")
			} else {
				badges = append(badges, "["+b.Label+"]")
			}
		}
		fmt.Fprintf(v.out, "   %s\n", strings.Join(badges, " "))
	}

	fmt.Fprintf(v.out, "   %s\n", card.ScoreText())
	fmt.Fprintf(v.out, "   %s\n\n", card.URL)
}

func NewView(query string, out io.Writer, status io.Writer) *View {
	return &View{
		query:  query,
		out:    out,
		status: status,
	}
}

var _ ui.View = &View{}
