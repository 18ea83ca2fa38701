package record

import (
	"sync"

	"github.com/bornholm/scout/pkg/ui"
)

// State is a snapshot of the page elements held by a View.
type State struct {
	Query          string         `json:"query" yaml:"query"`
	TriggerEnabled bool           `json:"-" yaml:"-"`
	Loading        bool           `json:"-" yaml:"-"`
	HeaderVisible  bool           `json:"-" yaml:"-"`
	ResultCount    string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	MessageKind    ui.MessageKind `json:"messageKind,omitempty" yaml:"messageKind,omitempty"`
	Message        string         `json:"message,omitempty" yaml:"message,omitempty"`
	Cards          []ui.Card      `json:"cards,omitempty" yaml:"cards,omitempty"`
}

// View keeps the page state in memory.
type View struct {
	mutex sync.RWMutex
	state State
	// names of the invoked ui.View methods, in order
	calls []string
}

func (v *View) Input() string {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return v.state.Query
}

func (v *View) SetInput(query string) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.state.Query = query
}

// SetTriggerEnabled implements ui.View.
func (v *View) SetTriggerEnabled(enabled bool) {
	v.update("SetTriggerEnabled", func(s *State) { s.TriggerEnabled = enabled })
}

// SetLoading implements ui.View.
func (v *View) SetLoading(visible bool) {
	v.update("SetLoading", func(s *State) { s.Loading = visible })
}

// SetHeaderVisible implements ui.View.
func (v *View) SetHeaderVisible(visible bool) {
	v.update("SetHeaderVisible", func(s *State) { s.HeaderVisible = visible })
}

// SetResultCount implements ui.View.
func (v *View) SetResultCount(text string) {
	v.update("SetResultCount", func(s *State) { s.ResultCount = text })
}

// ClearResults implements ui.View.
func (v *View) ClearResults() {
	v.update("ClearResults", func(s *State) {
		s.Cards = nil
		s.Message = ""
		s.MessageKind = ""
	})
}

// ShowMessage implements ui.View.
func (v *View) ShowMessage(kind ui.MessageKind, text string) {
	v.update("ShowMessage", func(s *State) {
		s.Cards = nil
		s.Message = text
		s.MessageKind = kind
	})
}

// AppendCard implements ui.View.
func (v *View) AppendCard(card ui.Card) {
	v.update("AppendCard", func(s *State) { s.Cards = append(s.Cards, card) })
}

func (v *View) State() State {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	state := v.state
	state.Cards = append([]ui.Card(nil), v.state.Cards...)

	return state
}

func (v *View) Calls() []string {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return append([]string(nil), v.calls...)
}

func (v *View) update(call string, fn func(s *State)) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	fn(&v.state)
	v.calls = append(v.calls, call)
}

// NewView returns an idle view with an enabled trigger.
func NewView(query string) *View {
	return &View{
		state: State{
			Query:          query,
			TriggerEnabled: true,
		},
	}
}

var _ ui.View = &View{}
