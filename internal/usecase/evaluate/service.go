package evaluate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/hitfilter/internal/domain/entity"
	"github.com/kailas-cloud/hitfilter/internal/logger"
	"github.com/kailas-cloud/hitfilter/internal/metrics"
)

// Outcome is the result of evaluating one form.
type Outcome struct {
	Form    entity.Form
	Matched bool
}

// Service evaluates keyword filters and records metrics for each evaluation.
type Service struct{}

// New creates an evaluation service.
func New() *Service {
	return &Service{}
}

// Evaluate tests a single form against f.
func (s *Service) Evaluate(ctx context.Context, f Filter, form entity.Form) (bool, error) {
	log := logger.FromContext(ctx)
	kind := form.FormType().String()

	matched, err := f.Evaluate(form)
	if err != nil {
		metrics.FilterErrorsTotal.WithLabelValues(kind).Inc()
		log.Error("Filter evaluation failed",
			zap.String("form_type", kind),
			zap.String("editor_id", form.EditorID()),
			zap.Error(err),
		)
		return false, fmt.Errorf("evaluate %s: %w", form.EditorID(), err)
	}

	result := "miss"
	if matched {
		result = "match"
	}
	metrics.FilterEvaluationsTotal.WithLabelValues(kind, result).Inc()

	log.Debug("Filter evaluated",
		zap.String("form_type", kind),
		zap.String("editor_id", form.EditorID()),
		zap.Bool("matched", matched),
	)
	return matched, nil
}

// EvaluateAll tests every form against the same filter, in order.
// It stops at the first error.
func (s *Service) EvaluateAll(ctx context.Context, f Filter, forms []entity.Form) ([]Outcome, error) {
	out := make([]Outcome, 0, len(forms))
	for _, form := range forms {
		matched, err := s.Evaluate(ctx, f, form)
		if err != nil {
			return out, err
		}
		out = append(out, Outcome{Form: form, Matched: matched})
	}
	return out, nil
}
