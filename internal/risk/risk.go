// Package risk computes the dashboard's risk score and classification.
package risk

import (
	"math/rand"
	"time"

	"github.com/ajayneena/econdash/internal/models"
)

// Risk score bounds for the uniform draw.
const (
	scoreMin = 2.0
	scoreMax = 8.0
)

// Classification labels and their display tags.
const (
	LabelHigh   = "High Risk"
	LabelMedium = "Medium Risk"
	LabelLow    = "Low Risk"

	TagHigh   = "risk-high"
	TagMedium = "risk-medium"
	TagLow    = "risk-low"
)

// Outlook sentences for each classification band.
const (
	outlookHigh   = "Economic conditions face significant headwinds. Policy intervention may be needed to stabilize growth and inflation."
	outlookMedium = "Economic conditions show mixed signals with moderate risks. Careful monitoring recommended."
	outlookLow    = "Economic conditions appear favorable with positive outlook for sustained growth and stability."
)

// Assessment is the derived classification of a risk score.
type Assessment struct {
	Label   string
	Tag     string
	Outlook string
}

// RandSource supplies the uniform draw behind Score.
// *rand.Rand satisfies it; tests substitute a fixed sequence.
type RandSource interface {
	Float64() float64
}

// Scorer produces risk scores for a set of generated indicator series.
type Scorer struct {
	rng RandSource
}

// NewScorer creates a scorer backed by the given random source.
// A nil source gets a time-seeded one.
func NewScorer(rng RandSource) *Scorer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scorer{rng: rng}
}

// Score returns a risk score in [2, 8) for the given indicator data.
// The data parameter is accepted for interface stability but does not yet
// influence the score: the value is a uniform draw, recomputed per render.
func (s *Scorer) Score(_ map[string]models.Series) float64 {
	return scoreMin + (scoreMax-scoreMin)*s.rng.Float64()
}

// Classify maps a score to its label, display tag, and outlook sentence.
// Band lower bounds are inclusive: >=7 is high, >=4 is medium, below that
// low. Total over all real scores, including those outside [2, 8).
func Classify(score float64) Assessment {
	switch {
	case score >= 7:
		return Assessment{Label: LabelHigh, Tag: TagHigh, Outlook: outlookHigh}
	case score >= 4:
		return Assessment{Label: LabelMedium, Tag: TagMedium, Outlook: outlookMedium}
	default:
		return Assessment{Label: LabelLow, Tag: TagLow, Outlook: outlookLow}
	}
}
