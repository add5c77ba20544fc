package hit

import "regexp"

// Patterns supplies the process-wide node name patterns. pattern.Set implements it.
type Patterns interface {
	Exclude() *regexp.Regexp
	PlayerNodes() *regexp.Regexp
}
