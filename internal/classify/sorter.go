package classify

import (
	"sort"

	"github.com/alexanderramin/hoursreport/internal/domain"
)

// ChronologicalSort orders sessions by start time. Sessions starting at the
// same instant keep their input order.
func ChronologicalSort(sessions []domain.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.Before(sessions[j].StartedAt)
	})
}
