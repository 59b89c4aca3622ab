package model

import "time"

// ClassificationResult is a profile selected for one sample, with its ranked actions.
// It belongs to the session that requested it and is dropped on reset or a new sample.
type ClassificationResult struct {
	ClassifiedAt time.Time       `json:"classified_at"`
	ID           string          `json:"id"`
	Actions      RankedActions   `json:"actions"`
	Profile      MaterialProfile `json:"profile"`
}

// BestAction returns the preferred action for the result.
func (r *ClassificationResult) BestAction() *RankedAction {
	return r.Actions.Best()
}
