package classifier

import (
	"fmt"
	"strings"
)

// ClassAccuracy is the evaluation result of one class collection.
type ClassAccuracy struct {
	Class    int
	Examples int
	Correct  int
}

// Accuracy returns Correct/Examples in [0,1]; ok is false when the class
// has no examples.
func (a ClassAccuracy) Accuracy() (value float64, ok bool) {
	if a.Examples == 0 {
		return 0, false
	}
	return float64(a.Correct) / float64(a.Examples), true
}

// Report summarises an EvaluateDataset run.
type Report struct {
	Classes []ClassAccuracy
	Correct int
	Total   int
}

// OverallPercent returns 100*Correct/Total, or 0 for an empty dataset.
func (r *Report) OverallPercent() float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 * float64(r.Correct) / float64(r.Total)
}

// String renders the per-class and overall accuracy.
func (r *Report) String() string {
	var sb strings.Builder
	for _, c := range r.Classes {
		if value, ok := c.Accuracy(); ok {
			fmt.Fprintf(&sb, "Category=%d, num examples=%d, pct correct=%g\n", c.Class, c.Examples, value)
		} else {
			fmt.Fprintf(&sb, "Category=%d, num examples=0, pct correct=no data\n", c.Class)
		}
	}
	fmt.Fprintf(&sb, "\nOverall accuracy = %g%%\n", r.OverallPercent())
	return sb.String()
}
