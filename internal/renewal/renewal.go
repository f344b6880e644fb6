package renewal

import (
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal"
)

// Request carries a contract renewal through HR submit, Manager
// recommendation and Approver decision. The state is fully determined by
// which fields have been filled in:
//
//	hr_submitted && recommendation == ""          -> waiting on the Manager
//	recommendation != "" && decision == ""        -> waiting on the Approver
//	returned_to_hr                                -> terminal
type Request struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	OfficerID   int64  `json:"officer_id" gorm:"column:officer_id;not null"`
	OfficerName string `json:"officer_name" gorm:"column:officer_name"`
	Position    string `json:"position"`
	HRNotes     string `json:"hr_notes" gorm:"column:hr_notes"`
	HRSubmitted bool   `json:"hr_submitted" gorm:"column:hr_submitted;default:true"`

	// Performance evaluation recorded by the Manager with the recommendation.
	Teaching     string `json:"teaching"`
	Research     string `json:"research"`
	Discipline   string `json:"discipline"`
	Contribution string `json:"contribution"`

	ManagerRecommendation string `json:"manager_recommendation" gorm:"column:manager_recommendation;default:''"`

	ApproverDecision string `json:"approver_decision" gorm:"column:approver_decision;default:''"`
	StrategicNote    string `json:"strategic_note" gorm:"column:strategic_note"`
	ReturnedToHR     bool   `json:"returned_to_hr" gorm:"column:returned_to_hr;default:false"`

	SubmittedAt   time.Time  `json:"submitted_at" gorm:"column:submitted_at"`
	RecommendedAt *time.Time `json:"recommended_at,omitempty" gorm:"column:recommended_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty" gorm:"column:decided_at"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Request) TableName() string {
	return "renewal_requests"
}

const (
	RecommendRenew      = "Renew"
	RecommendDoNotRenew = "Do Not Renew"

	DecisionApproved = "Approved"
	DecisionRejected = "Rejected"
)

func ValidRecommendation(r string) bool {
	return r == RecommendRenew || r == RecommendDoNotRenew
}

func ValidDecision(d string) bool {
	return d == DecisionApproved || d == DecisionRejected
}

// CanBeRecommended reports whether the Manager may act: HR must have
// submitted and no recommendation can exist yet.
func (r *Request) CanBeRecommended() bool {
	return r.HRSubmitted && r.ManagerRecommendation == ""
}

// CanBeDecided reports whether the Approver may act: a recommendation must
// exist and no decision may have been made.
func (r *Request) CanBeDecided() bool {
	return r.ManagerRecommendation != "" && r.ApproverDecision == ""
}

// IsTerminal: once the decision is returned to HR nothing moves the request
// again.
func (r *Request) IsTerminal() bool {
	return r.ReturnedToHR
}

// Recommend applies the Manager transition. Callers check
// CanBeRecommended first; this only writes the fields.
func (r *Request) Recommend(dto RecommendDTO) {
	now := time.Now()
	r.Teaching = dto.Teaching
	r.Research = dto.Research
	r.Discipline = dto.Discipline
	r.Contribution = dto.Contribution
	r.ManagerRecommendation = dto.Recommendation
	r.RecommendedAt = &now
	r.UpdatedAt = now
}

// Decide applies the Approver transition and returns the request to HR.
func (r *Request) Decide(dto DecideDTO) {
	now := time.Now()
	r.ApproverDecision = dto.Decision
	r.StrategicNote = dto.StrategicNote
	r.ReturnedToHR = true
	r.DecidedAt = &now
	r.UpdatedAt = now
}

// Queue names for list partitioning. Each partition is a pure filter over
// the full collection.
const (
	StatusPending         = "pending"
	StatusPendingApprover = "pending-approver"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
)

// Filter partitions requests by queue. An empty or unknown status returns
// the whole collection.
func Filter(requests []*Request, status string) []*Request {
	var pred func(*Request) bool
	switch status {
	case StatusPending:
		pred = func(r *Request) bool { return r.CanBeRecommended() }
	case StatusPendingApprover:
		pred = func(r *Request) bool { return r.CanBeDecided() }
	case StatusApproved:
		pred = func(r *Request) bool { return r.ApproverDecision == DecisionApproved }
	case StatusRejected:
		pred = func(r *Request) bool { return r.ApproverDecision == DecisionRejected }
	default:
		return requests
	}

	filtered := make([]*Request, 0, len(requests))
	for _, r := range requests {
		if pred(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

var (
	ErrNotFound     = internal.NewNotFoundError("renewal request not found", internal.ErrCodeRequestNotFound)
	ErrAlreadyOpen  = internal.NewConflictError("officer already has an open renewal request", internal.ErrCodeRequestAlreadyOpen)
	ErrInvalidState = internal.NewConflictError("renewal request is not in a state that allows this transition", internal.ErrCodeInvalidRequestState)
	ErrMissingNote  = internal.NewValidationError("a strategic note must accompany the decision", internal.ErrCodeMissingStrategicNote)
)
