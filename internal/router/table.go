package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/booltable/internal/apperr"
	"github.com/DjordjeVuckovic/booltable/internal/domain"
	"github.com/DjordjeVuckovic/booltable/internal/dto"
	"github.com/DjordjeVuckovic/booltable/internal/parser"
	"github.com/DjordjeVuckovic/booltable/internal/pipeline"
	"github.com/DjordjeVuckovic/booltable/internal/report"
	"github.com/DjordjeVuckovic/booltable/internal/storage"
	"github.com/DjordjeVuckovic/booltable/pkg/pagination"
)

const maxBatchSize = 100

type TableRouter struct {
	e       *echo.Echo
	storage storage.Store
	opts    pipeline.Options
}

type TableRouterOption func(*TableRouter)

// WithMaxInputs bounds the number of input variables accepted per equation.
func WithMaxInputs(n int) TableRouterOption {
	return func(r *TableRouter) {
		r.opts.MaxInputs = n
	}
}

func NewTableRouter(e *echo.Echo, store storage.Store, opts ...TableRouterOption) *TableRouter {
	r := &TableRouter{
		e:       e,
		storage: store,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TableRouter) Bind() {
	g := r.e.Group("/api/v1/tables")
	g.POST("", r.createHandler)
	g.POST("/batch", r.batchHandler)
	g.GET("", r.listHandler)
	g.GET("/:id", r.getHandler)
	g.GET("/:id/markdown", r.markdownHandler)
}

// createHandler evaluates and stores one equation
// @Summary Evaluate an equation
// @Description Parses the equation, enumerates every input assignment and stores the truth table
// @Tags tables
// @Accept json
// @Produce json
// @Param request body dto.TableRequest true "Equation"
// @Success 201 {object} dto.TableResponse
// @Failure 400 {object} dto.SyntaxErrorResponse
// @Router /api/v1/tables [post]
func (r *TableRouter) createHandler(c echo.Context) error {
	var req dto.TableRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Equation == "" {
		return apperr.NewValidation("equation is required")
	}

	res, err := r.evaluate(req.Equation)
	if err != nil {
		return err
	}

	ev := domain.NewEvaluation(req.Equation, res)
	if _, err := r.storage.Save(c.Request().Context(), ev); err != nil {
		return fmt.Errorf("failed to store evaluation: %w", err)
	}

	slog.Info("Table created", "id", ev.ID, "inputs", len(ev.Inputs), "classification", ev.Classification)
	return c.JSON(http.StatusCreated, dto.NewTableResponse(ev, res))
}

// batchHandler evaluates several equations and stores them together
// @Summary Evaluate equations in bulk
// @Tags tables
// @Accept json
// @Produce json
// @Param request body dto.BatchTableRequest true "Equations"
// @Success 201 {array} dto.TableResponse
// @Failure 400 {object} dto.SyntaxErrorResponse
// @Router /api/v1/tables/batch [post]
func (r *TableRouter) batchHandler(c echo.Context) error {
	var req dto.BatchTableRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Equations) == 0 {
		return apperr.NewValidation("equations are required")
	}
	if len(req.Equations) > maxBatchSize {
		return apperr.NewValidation(fmt.Sprintf("at most %d equations per batch", maxBatchSize))
	}

	evaluations := make([]domain.Evaluation, 0, len(req.Equations))
	responses := make([]dto.TableResponse, 0, len(req.Equations))
	for i, src := range req.Equations {
		res, err := r.evaluate(src)
		if err != nil {
			var ve *apperr.ValidationError
			if errors.As(err, &ve) {
				ve.WithDetail("index", i)
			}
			return err
		}
		ev := domain.NewEvaluation(src, res)
		evaluations = append(evaluations, ev)
		responses = append(responses, dto.NewTableResponse(ev, res))
	}

	if err := r.storage.SaveBulk(c.Request().Context(), evaluations); err != nil {
		return fmt.Errorf("failed to store evaluations: %w", err)
	}

	return c.JSON(http.StatusCreated, responses)
}

// getHandler returns a stored truth table
// @Summary Get a truth table
// @Tags tables
// @Produce json
// @Param id path string true "Evaluation ID"
// @Success 200 {object} dto.TableResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/tables/{id} [get]
func (r *TableRouter) getHandler(c echo.Context) error {
	ev, err := r.load(c)
	if err != nil {
		return err
	}

	resp, err := dto.FromEvaluation(*ev)
	if err != nil {
		return fmt.Errorf("failed to render evaluation: %w", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// markdownHandler returns a stored truth table as a markdown table
// @Summary Get a truth table as markdown
// @Tags tables
// @Produce plain
// @Param id path string true "Evaluation ID"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /api/v1/tables/{id}/markdown [get]
func (r *TableRouter) markdownHandler(c echo.Context) error {
	ev, err := r.load(c)
	if err != nil {
		return err
	}

	table, err := ev.Table()
	if err != nil {
		return fmt.Errorf("failed to render evaluation: %w", err)
	}
	return c.String(http.StatusOK, report.Markdown(table))
}

// listHandler pages through stored evaluations, newest first
// @Summary List truth tables
// @Tags tables
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.OffsetResult[domain.Evaluation]
// @Router /api/v1/tables [get]
func (r *TableRouter) listHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	if err := page.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	res, err := r.storage.List(c.Request().Context(), page)
	if err != nil {
		return fmt.Errorf("failed to list evaluations: %w", err)
	}
	return c.JSON(http.StatusOK, res)
}

func (r *TableRouter) load(c echo.Context) (*domain.Evaluation, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid evaluation id", err)
	}

	ev, err := r.storage.Get(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NewNotFound("evaluation", raw, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return ev, nil
}

func (r *TableRouter) evaluate(src string) (*pipeline.Result, error) {
	res, err := pipeline.Run(src, r.opts)
	if err == nil {
		return res, nil
	}

	var se parser.SyntaxError
	if errors.As(err, &se) {
		return nil, apperr.NewValidation("syntax error").
			WithDetail("expected", se.Expectation()).
			WithDetail("got", parser.Describe(se.Offending())).
			WithDetail("span", se.Offending().Span.String()).
			WithDetail("diagnostic", parser.Render(se, src))
	}

	var tooMany *pipeline.TooManyInputsError
	if errors.As(err, &tooMany) {
		return nil, apperr.NewValidationWrap("equation too large", err).
			WithDetail("inputs", tooMany.Inputs).
			WithDetail("limit", tooMany.Limit)
	}

	return nil, err
}
