package es

import (
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/booltable/internal/domain"
)

// Document is the indexed form of a domain.Evaluation.
type Document struct {
	ID             string    `json:"id"`
	Equation       string    `json:"equation"`
	Normalized     string    `json:"normalized"`
	Inputs         []string  `json:"inputs"`
	InputCount     int       `json:"input_count"`
	Output         string    `json:"output"`
	Rows           []string  `json:"rows"`
	Outputs        string    `json:"outputs"`
	Classification string    `json:"classification"`
	CreatedAt      time.Time `json:"created_at"`
	IndexedAt      time.Time `json:"indexed_at"`
}

func toDocument(ev domain.Evaluation) Document {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	return Document{
		ID:             ev.ID.String(),
		Equation:       ev.Equation,
		Normalized:     ev.Normalized,
		Inputs:         ev.Inputs,
		InputCount:     len(ev.Inputs),
		Output:         ev.Output,
		Rows:           ev.Rows,
		Outputs:        ev.Outputs,
		Classification: ev.Classification,
		CreatedAt:      ev.CreatedAt,
		IndexedAt:      time.Now().UTC(),
	}
}

func (d Document) toDomain() (domain.Evaluation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Evaluation{}, err
	}
	return domain.Evaluation{
		ID:             id,
		Equation:       d.Equation,
		Normalized:     d.Normalized,
		Inputs:         d.Inputs,
		Output:         d.Output,
		Rows:           d.Rows,
		Outputs:        d.Outputs,
		Classification: d.Classification,
		CreatedAt:      d.CreatedAt,
	}, nil
}
