package engine

import "fmt"

// ListAll renders every tracked habit, uncompleted buckets first and then
// completed buckets, each in fixed period order. Completed lines show the
// stored completion timestamp in the schedule position.
func (s *Service) ListAll() []string {
	out := []string{}
	for _, p := range Periods {
		for _, e := range *p.entries(s.doc) {
			out = append(out, fmt.Sprintf("Uncompleted %s: %s at %s", p.Capitalized(), e.Task, e.Schedule))
		}
	}
	for _, p := range Periods {
		for _, c := range *p.completions(s.doc) {
			out = append(out, fmt.Sprintf("Completed %s: %s at %s", p.Capitalized(), c.Task, c.CompletedAt))
		}
	}
	return out
}
