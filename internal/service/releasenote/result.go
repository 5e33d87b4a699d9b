package releasenote

import "github.com/heartmarshall/relnotes-backend/internal/domain"

// Result holds the outcome of each requested platform. A platform is either
// in Failures or has its notes set, never both. Notes may be empty when the
// model ignored the output format.
type Result struct {
	Selection domain.Selection
	IOS       domain.IOSNotes
	Android   *domain.AndroidNotes
	Failures  map[domain.Platform]error
}

// Failed reports whether generation for p was requested and failed.
func (r *Result) Failed(p domain.Platform) bool {
	_, ok := r.Failures[p]
	return ok
}

// Succeeded lists requested platforms that produced a result, iOS first.
func (r *Result) Succeeded() []domain.Platform {
	var out []domain.Platform
	for _, p := range r.Selection.Platforms() {
		if !r.Failed(p) {
			out = append(out, p)
		}
	}
	return out
}
