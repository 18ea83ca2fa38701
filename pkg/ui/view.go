package ui

import "fmt"

const (
	MessageNoResults = "No recommendations found."
	MessageError     = "Something went wrong. Please try again."
)

type MessageKind string

const (
	MessageKindInfo  MessageKind = "info"
	MessageKindError MessageKind = "error"
)

// View is the set of page elements a search client reads and writes:
// the query input, the trigger control, the results area, the loading
// indicator and the results summary header with its count text.
type View interface {
	Input() string

	SetTriggerEnabled(enabled bool)
	SetLoading(visible bool)
	SetHeaderVisible(visible bool)
	SetResultCount(text string)

	// ClearResults empties the results area.
	ClearResults()
	// ShowMessage replaces the content of the results area with a single message.
	ShowMessage(kind MessageKind, text string)
	AppendCard(card Card)
}

func ResultCountText(total int) string {
	return fmt.Sprintf("Found %d relevant assessments based on your requirements.", total)
}
