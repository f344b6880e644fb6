package officer

import (
	"math"
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal"
)

// Officer is an employee whose contract is tracked through the renewal
// workflow. The account behind it lives in the users table; this row carries
// the contract side.
type Officer struct {
	ID               int64      `json:"id" gorm:"primaryKey"`
	UserID           int64      `json:"user_id" gorm:"column:user_id;not null"`
	FirstName        string     `json:"first_name" gorm:"column:first_name"`
	LastName         string     `json:"last_name" gorm:"column:last_name"`
	Position         string     `json:"position"`
	ContractEndDate  time.Time  `json:"contract_end_date" gorm:"column:contract_end_date;type:date"`
	ComplianceStatus bool       `json:"compliance_status" gorm:"column:compliance_status;default:false"`
	Qualification    string     `json:"qualification"`
	ConductReport    string     `json:"conduct_report" gorm:"column:conduct_report"`
	RenewalApproved  bool       `json:"renewal_approved" gorm:"column:renewal_approved;default:false"`
	TerminatedAt     *time.Time `json:"terminated_at,omitempty" gorm:"column:terminated_at"`
	Documents        []Document `json:"documents,omitempty" gorm:"foreignKey:OfficerID"`
	CreatedAt        time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Officer) TableName() string {
	return "officers"
}

// Document is one uploaded file attached to an officer, ordered by upload time.
type Document struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	OfficerID  int64     `json:"officer_id" gorm:"column:officer_id;not null"`
	FileName   string    `json:"file_name" gorm:"column:file_name;not null"`
	StoredName string    `json:"-" gorm:"column:stored_name;not null"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"column:uploaded_at"`
}

func (Document) TableName() string {
	return "officer_documents"
}

// Contract status values derived from the contract end date. Never stored:
// always recomputed against the clock.
const (
	ContractActive       = "Active"
	ContractExpiringSoon = "Expiring Soon"
	ContractExpired      = "Expired"
)

// expiringWindowDays is how close to the end date a contract counts as
// expiring. Exactly 30 days remaining is still Expiring Soon; 31 is Active.
const expiringWindowDays = 30

// ContractStatus classifies an end date relative to now. Both instants are
// reduced to calendar days in now's zone so "today" expires at local
// midnight, not mid-request or at a UTC boundary.
func ContractStatus(endDate, now time.Time) string {
	loc := now.Location()
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	// rounding absorbs the odd-length days DST transitions produce
	days := int(math.Round(end.Sub(today).Hours() / 24))
	switch {
	case days < 0:
		return ContractExpired
	case days <= expiringWindowDays:
		return ContractExpiringSoon
	default:
		return ContractActive
	}
}

func (o *Officer) FullName() string {
	if o.FirstName == "" {
		return o.LastName
	}
	if o.LastName == "" {
		return o.FirstName
	}
	return o.FirstName + " " + o.LastName
}

func (o *Officer) IsTerminated() bool {
	return o.TerminatedAt != nil
}

var (
	ErrNotFound   = internal.NewNotFoundError("officer not found", internal.ErrCodeOfficerNotFound)
	ErrTerminated = internal.NewConflictError("officer is terminated", internal.ErrCodeOfficerTerminated)
)
