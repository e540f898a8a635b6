package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MaxTextLength is the longest text training item accepted.
const MaxTextLength = 1024

// TrainingItem is one labelled example. Data holds the text, the canonical
// image URL, the sound id, or a JSON array of numbers depending on the
// project type.
type TrainingItem struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Label     string
	Data      string
	Numbers   []float64
	CreatedAt time.Time
}

// NumbersJSON encodes the numeric features for storage.
func (t *TrainingItem) NumbersJSON() ([]byte, error) {
	if t.Numbers == nil {
		return nil, nil
	}
	return json.Marshal(t.Numbers)
}

type TrainingListFilter struct {
	ProjectID uuid.UUID
	Label     string
	Limit     int
	Offset    int
}

// TrainingPage is one page of a training item listing.
type TrainingPage struct {
	Items  []*TrainingItem
	Total  int
	Limit  int
	Offset int
}
