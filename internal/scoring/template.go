// Package scoring turns raw survey responses plus per-question scoring
// metadata into dimension-level and overall maturity scores. It is pure
// computation: no I/O, no shared state, every call operates on its own
// immutable input snapshot.
package scoring

import (
	"strings"

	"safetyvitals/internal/model"
)

// ResolveOption maps an answer to its numeric score by matching it
// against the template's ordered option list. Matching trims whitespace
// and lowercases both sides; the first exact match wins. The second
// return value is false when the answer matches no option or the
// matched index has no corresponding score, in which case the response
// contributes nothing to aggregation.
func ResolveOption(answer string, tpl *model.OptionTemplate) (float64, bool) {
	if tpl == nil {
		return 0, false
	}
	needle := strings.ToLower(strings.TrimSpace(answer))
	for i, opt := range tpl.Options {
		if strings.ToLower(strings.TrimSpace(opt)) == needle {
			if i >= len(tpl.Scores) {
				return 0, false
			}
			return tpl.Scores[i], true
		}
	}
	return 0, false
}
