package evaluate

import "github.com/kailas-cloud/hitfilter/internal/domain/entity"

// Filter decides whether a form matches. *filter.List implements it.
type Filter interface {
	Evaluate(form entity.Form) (bool, error)
}
