// Package Reports derives the read-side views: the punctuality check and the
// per-collaborator summary. Everything here is a pure fold over a snapshot of
// task rows fetched by the caller; nothing is cached or maintained
// incrementally.
package Reports

import (
	"time"

	"TaskControl/AbstractFunctions"
	"TaskControl/Models"
)

// ExcellentThreshold is the on-time ratio at or above which a collaborator
// is rated "Excellent".
const ExcellentThreshold = 0.6

const (
	CommentExcellent        = "Excellent"
	CommentNeedsImprovement = "Needs improvement"
)

// CollaboratorSummary is the derived per-collaborator report row. It is
// recomputed from the full task collection on every request.
type CollaboratorSummary struct {
	Collaborator string `json:"collaborator"`
	NotStarted   int    `json:"notStarted"`
	InProgress   int    `json:"inProgress"`
	Finished     int    `json:"finished"`
	OnTime       int    `json:"onTime"`
	Stars        int    `json:"stars"`
	Comment      string `json:"comment"`
}

// IsOnTime reports whether a finish timestamp falls at or before the last
// instant of the due date. It is only meaningful for finished tasks; callers
// exclude every other status from on-time/late counting. An unparseable due
// date counts as late, matching how the previous system compared against an
// invalid date.
func IsOnTime(finishedAt time.Time, dueDate string) bool {
	due, err := AbstractFunctions.ParseDate(dueDate)
	if err != nil {
		return false
	}
	return !finishedAt.After(AbstractFunctions.EndOfDay(due))
}

// Summarize folds the task collection into per-assignee summaries. The
// result map is unordered; consumers sort for display.
func Summarize(tasks []Models.Task) map[string]CollaboratorSummary {
	summaries := make(map[string]CollaboratorSummary)

	for _, t := range tasks {
		s := summaries[t.Assignee]
		s.Collaborator = t.Assignee

		switch t.Status {
		case Models.StatusNotStarted:
			s.NotStarted++
		case Models.StatusInProgress:
			s.InProgress++
		case Models.StatusFinished:
			s.Finished++
			if t.FinishedAt != nil && IsOnTime(*t.FinishedAt, t.DueDate) {
				s.OnTime++
			}
		}

		summaries[t.Assignee] = s
	}

	for name, s := range summaries {
		ratio := 0.0
		if s.Finished > 0 {
			ratio = float64(s.OnTime) / float64(s.Finished)
		}
		s.Stars = StarsFor(ratio)
		s.Comment = CommentFor(ratio)
		summaries[name] = s
	}

	return summaries
}

// StarsFor truncates ratio*5 to an integer in [0,5]. A ratio just below 1.0
// floors to 4 stars; only an exact 1.0 yields 5. This is deliberate: the
// rating never rounds up.
func StarsFor(ratio float64) int {
	return int(ratio * 5)
}

// CommentFor maps the on-time ratio to the fixed report comment. A
// collaborator with zero finished tasks has ratio 0 and so reads "Needs
// improvement"; the stakeholders chose to keep rating them rather than
// excluding them.
func CommentFor(ratio float64) string {
	if ratio >= ExcellentThreshold {
		return CommentExcellent
	}
	return CommentNeedsImprovement
}
