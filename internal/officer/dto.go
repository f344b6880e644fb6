package officer

import (
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal"
)

const dateLayout = "2006-01-02"

// CreateOfficerDTO creates the account and the contract in one step, the way
// the HR view adds an officer (account gets a default password until first
// login).
type CreateOfficerDTO struct {
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Position        string `json:"position"`
	Qualification   string `json:"qualification"`
	ContractEndDate string `json:"contract_end_date"`
}

func (dto CreateOfficerDTO) Validate() error {
	if dto.Username == "" {
		return internal.NewValidationFieldError("username", "username is required", internal.ErrCodeValidationFailed)
	}
	if dto.Email == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeValidationFailed)
	}
	if dto.Position == "" {
		return internal.NewValidationFieldError("position", "position is required", internal.ErrCodeValidationFailed)
	}
	if _, err := dto.EndDate(); err != nil {
		return internal.NewValidationError("contract_end_date must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	return nil
}

func (dto CreateOfficerDTO) EndDate() (time.Time, error) {
	return time.Parse(dateLayout, dto.ContractEndDate)
}

// RenewContractDTO carries the new end date for a renewal or an approved
// renewal.
type RenewContractDTO struct {
	ContractEndDate string `json:"contract_end_date"`
}

func (dto RenewContractDTO) Validate() error {
	if _, err := dto.EndDate(); err != nil {
		return internal.NewValidationError("contract_end_date must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	return nil
}

func (dto RenewContractDTO) EndDate() (time.Time, error) {
	return time.Parse(dateLayout, dto.ContractEndDate)
}

// OfficerView is an Officer plus the derived contract status. The status is
// computed at response time, never persisted.
type OfficerView struct {
	Officer
	ContractStatus string `json:"contract_status"`
}

func NewView(o *Officer, now time.Time) OfficerView {
	return OfficerView{
		Officer:        *o,
		ContractStatus: ContractStatus(o.ContractEndDate, now),
	}
}

func NewViews(officers []*Officer, now time.Time) []OfficerView {
	views := make([]OfficerView, len(officers))
	for i, o := range officers {
		views[i] = NewView(o, now)
	}
	return views
}
