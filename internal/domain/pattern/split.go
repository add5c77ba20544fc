package pattern

import (
	"regexp"

	"github.com/kailas-cloud/hitfilter/internal/domain"
)

// Split cuts input around every match of the delimiter regex.
// Empty segments between adjacent delimiters and at either end are kept.
func Split(input, delimiter string) ([]string, error) {
	re, err := regexp.Compile(delimiter)
	if err != nil {
		return nil, domain.NewPatternError(delimiter, err)
	}
	return re.Split(input, -1), nil
}
