package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/booltable/internal/compiler"
	"github.com/DjordjeVuckovic/booltable/internal/domain"
	"github.com/DjordjeVuckovic/booltable/internal/pipeline"
	"github.com/DjordjeVuckovic/booltable/internal/report"
	"github.com/DjordjeVuckovic/booltable/internal/vm"
)

type TableRequest struct {
	Equation string `json:"equation" example:"A AND B OR C = Z"`
}

type BatchTableRequest struct {
	Equations []string `json:"equations"`
}

type TableResponse struct {
	ID             uuid.UUID         `json:"id"`
	Equation       string            `json:"equation"`
	Normalized     string            `json:"normalized"`
	Classification string            `json:"classification,omitempty"`
	Table          *vm.TruthTable    `json:"table"`
	Program        *compiler.Program `json:"program,omitempty"`
	Markdown       string            `json:"markdown"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// NewTableResponse renders a freshly evaluated equation.
func NewTableResponse(ev domain.Evaluation, res *pipeline.Result) TableResponse {
	return TableResponse{
		ID:             ev.ID,
		Equation:       ev.Equation,
		Normalized:     ev.Normalized,
		Classification: ev.Classification,
		Table:          res.Table,
		Program:        res.Program,
		Markdown:       report.Markdown(res.Table),
		CreatedAt:      ev.CreatedAt,
	}
}

// FromEvaluation renders a stored evaluation. Stored records carry no program.
func FromEvaluation(ev domain.Evaluation) (TableResponse, error) {
	table, err := ev.Table()
	if err != nil {
		return TableResponse{}, err
	}
	return TableResponse{
		ID:             ev.ID,
		Equation:       ev.Equation,
		Normalized:     ev.Normalized,
		Classification: ev.Classification,
		Table:          table,
		Markdown:       report.Markdown(table),
		CreatedAt:      ev.CreatedAt,
	}, nil
}

type SyntaxErrorResponse struct {
	Error      string `json:"error"`
	Title      string `json:"title"`
	Expected   string `json:"expected,omitempty"`
	Got        string `json:"got,omitempty"`
	Span       string `json:"span,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`
}
