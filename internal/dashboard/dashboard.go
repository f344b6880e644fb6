package dashboard

import "github.com/Naxdouglas/contract-renewal-sys/internal/auth"

const (
	ViewAdmin    = "admin"
	ViewHR       = "hr"
	ViewManager  = "manager"
	ViewApprover = "approver"
	ViewOfficer  = "officer"
)

// ViewForRole maps a role to its dashboard view. Anything unrecognized
// lands on the officer view, which exposes nothing privileged.
func ViewForRole(role string) string {
	switch role {
	case auth.RoleAdmin:
		return ViewAdmin
	case auth.RoleHR:
		return ViewHR
	case auth.RoleManager:
		return ViewManager
	case auth.RoleApprover:
		return ViewApprover
	default:
		return ViewOfficer
	}
}

// Summary is the payload behind the landing page. Only the counts that
// matter to the caller's view are filled in.
type Summary struct {
	View string `json:"view"`

	TotalOfficers   int    `json:"total_officers,omitempty"`
	ExpiringSoon    int    `json:"expiring_soon,omitempty"`
	Expired         int    `json:"expired,omitempty"`
	ReturnedToHR    int    `json:"returned_to_hr,omitempty"`
	PendingReview   int    `json:"pending_review,omitempty"`
	PendingDecision int    `json:"pending_decision,omitempty"`
	OpenTickets     int    `json:"open_tickets,omitempty"`
	UnreadNotices   int    `json:"unread_notifications,omitempty"`
	ContractStatus  string `json:"contract_status,omitempty"`
}
