// Package pipeline implements the four stage workers that move work
// items from discovery through posting. Each worker runs one pass over a
// single process and reports a StageResult the scheduler acts on.
package pipeline

// Stage result statuses.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailed  = "failed"
)

// StageResult summarises one stage pass over one process.
type StageResult struct {
	Stage     string   `json:"stage"`
	Advanced  int      `json:"advanced"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
	ElapsedMS int64    `json:"elapsed_ms"`
	Status    string   `json:"status"`
}

// finalize derives the overall status: failed when nothing advanced and
// something went wrong, partial when both happened, success otherwise.
func (r *StageResult) finalize() *StageResult {
	switch {
	case len(r.Errors) == 0 && r.Failed == 0:
		r.Status = StatusSuccess
	case r.Advanced > 0:
		r.Status = StatusPartial
	default:
		r.Status = StatusFailed
	}
	return r
}

func (r *StageResult) addError(err error) {
	r.Errors = append(r.Errors, err.Error())
}
