package officer

import "time"

// Report kinds. "terminated" reads the separately tracked terminated
// collection; the others are pure filters over the active one.
const (
	ReportAll        = "all"
	ReportExpiring   = "expiring"
	ReportTerminated = "terminated"
)

func ValidReportKind(kind string) bool {
	switch kind {
	case ReportAll, ReportExpiring, ReportTerminated:
		return true
	}
	return false
}

// BuildReport projects an officer collection into a report. Pure function:
// no repository access, recomputed on demand from whatever collection the
// caller already holds.
func BuildReport(kind string, officers []*Officer, now time.Time) []OfficerView {
	views := NewViews(officers, now)

	if kind != ReportExpiring {
		return views
	}

	filtered := make([]OfficerView, 0, len(views))
	for _, v := range views {
		if v.ContractStatus == ContractExpiringSoon {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Report loads the right collection for the kind and projects it.
func (s *Service) Report(kind string) ([]OfficerView, error) {
	var (
		officers []*Officer
		err      error
	)
	if kind == ReportTerminated {
		officers, err = s.repo.GetTerminated()
	} else {
		officers, err = s.repo.GetAll()
	}
	if err != nil {
		s.logger.Error("failed to load officers for report", "error", err, "kind", kind)
		return nil, err
	}

	return BuildReport(kind, officers, time.Now()), nil
}
