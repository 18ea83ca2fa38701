package ui

import (
	"fmt"
	"math"

	"github.com/bornholm/scout/pkg/badge"
	"github.com/bornholm/scout/pkg/recommend"
)

const LinkLabel = "View details →"

type Badge struct {
	Label string     `json:"label" yaml:"label"`
	Kind  badge.Kind `json:"kind" yaml:"kind"`
}

type Card struct {
	Heading    string  `json:"heading" yaml:"heading"`
	Badges     []Badge `json:"badges,omitempty" yaml:"badges,omitempty"`
	Percentage int     `json:"percentage" yaml:"percentage"`
	URL        string  `json:"url" yaml:"url"`
}

func (c Card) ScoreText() string {
	return fmt.Sprintf("Relevance Score: %d%%", c.Percentage)
}

func NewCard(item recommend.Item) Card {
	card := Card{
		Heading:    item.Name,
		Percentage: Percentage(item.Score),
		URL:        item.URL,
	}

	for _, t := range item.Types {
		card.Badges = append(card.Badges, Badge{
			Label: t,
			Kind:  badge.Classify(t),
		})
	}

	return card
}

// Percentage converts a relevance score to a percentage, rounding halves up.
// Scores are clamped to [0, 1] and NaN counts as 0.
func Percentage(score float64) int {
	if math.IsNaN(score) || score < 0 {
		score = 0
	} else if score > 1 {
		score = 1
	}

	scaled := score * 100

	rounded := math.Floor(scaled)
	if scaled-rounded >= 0.5 {
		rounded++
	}

	return int(rounded)
}
