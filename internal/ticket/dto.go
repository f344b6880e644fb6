package ticket

import "github.com/Naxdouglas/contract-renewal-sys/internal"

type CreateTicketDTO struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (d CreateTicketDTO) Validate() error {
	if d.Subject == "" {
		return internal.NewValidationFieldError("subject", "subject is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
