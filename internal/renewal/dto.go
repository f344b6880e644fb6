package renewal

import "github.com/Naxdouglas/contract-renewal-sys/internal"

type SubmitRequestDTO struct {
	OfficerID int64  `json:"officer_id"`
	HRNotes   string `json:"hr_notes"`
}

func (d SubmitRequestDTO) Validate() error {
	if d.OfficerID <= 0 {
		return internal.NewValidationFieldError("officer_id", "officer_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// RecommendDTO is the Manager's evaluation. All four performance fields are
// required together with the recommendation itself.
type RecommendDTO struct {
	Teaching       string `json:"teaching"`
	Research       string `json:"research"`
	Discipline     string `json:"discipline"`
	Contribution   string `json:"contribution"`
	Recommendation string `json:"recommendation"`
}

func (d RecommendDTO) Validate() error {
	required := map[string]string{
		"teaching":     d.Teaching,
		"research":     d.Research,
		"discipline":   d.Discipline,
		"contribution": d.Contribution,
	}
	for field, value := range required {
		if value == "" {
			return internal.NewValidationFieldError(field, field+" evaluation is required", internal.ErrCodeValidationFailed)
		}
	}
	if !ValidRecommendation(d.Recommendation) {
		return internal.NewValidationFieldError("recommendation",
			"recommendation must be \"Renew\" or \"Do Not Renew\"", internal.ErrCodeValidationFailed)
	}
	return nil
}

type DecideDTO struct {
	Decision      string `json:"decision"`
	StrategicNote string `json:"strategic_note"`
}

func (d DecideDTO) Validate() error {
	if !ValidDecision(d.Decision) {
		return internal.NewValidationFieldError("decision",
			"decision must be \"Approved\" or \"Rejected\"", internal.ErrCodeValidationFailed)
	}
	if d.StrategicNote == "" {
		return ErrMissingNote
	}
	return nil
}
