package dashboard

import (
	"log/slog"
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
	"github.com/Naxdouglas/contract-renewal-sys/internal/notification"
	"github.com/Naxdouglas/contract-renewal-sys/internal/officer"
	"github.com/Naxdouglas/contract-renewal-sys/internal/renewal"
	"github.com/Naxdouglas/contract-renewal-sys/internal/ticket"
)

type OfficerReader interface {
	GetAll() ([]officer.OfficerView, error)
	GetByUserID(userID int64) (*officer.Officer, error)
}

type RenewalReader interface {
	List(status string) ([]*renewal.Request, error)
}

type TicketReader interface {
	GetAll() ([]*ticket.Ticket, error)
}

type NotificationReader interface {
	GetForUser(userID int64) ([]*notification.Notification, error)
}

type Service struct {
	officers      OfficerReader
	renewals      RenewalReader
	tickets       TicketReader
	notifications NotificationReader
	logger        *slog.Logger
}

func NewService(officers OfficerReader, renewals RenewalReader, tickets TicketReader, notifications NotificationReader, logger *slog.Logger) *Service {
	return &Service{
		officers:      officers,
		renewals:      renewals,
		tickets:       tickets,
		notifications: notifications,
		logger:        logger,
	}
}

// Summarize builds the landing-page summary for a session user. Counts are
// scoped to what the user's view shows; failures in one feed degrade that
// count to zero rather than failing the whole page.
func (s *Service) Summarize(user *auth.User) *Summary {
	summary := &Summary{View: ViewForRole(user.Role)}

	switch summary.View {
	case ViewAdmin, ViewHR:
		s.fillContractCounts(summary)
		s.fillRenewalCounts(summary)
		s.fillTicketCount(summary)
	case ViewManager:
		summary.PendingReview = s.countRenewals(renewal.StatusPending)
	case ViewApprover:
		summary.PendingDecision = s.countRenewals(renewal.StatusPendingApprover)
	case ViewOfficer:
		s.fillOfficerView(summary, user.ID)
	}

	return summary
}

func (s *Service) fillContractCounts(summary *Summary) {
	views, err := s.officers.GetAll()
	if err != nil {
		s.logger.Error("dashboard: failed to list officers", "error", err)
		return
	}
	summary.TotalOfficers = len(views)
	for _, v := range views {
		switch v.ContractStatus {
		case officer.ContractExpiringSoon:
			summary.ExpiringSoon++
		case officer.ContractExpired:
			summary.Expired++
		}
	}
}

func (s *Service) fillRenewalCounts(summary *Summary) {
	requests, err := s.renewals.List("")
	if err != nil {
		s.logger.Error("dashboard: failed to list renewal requests", "error", err)
		return
	}
	for _, r := range requests {
		if r.ReturnedToHR {
			summary.ReturnedToHR++
		}
	}
}

func (s *Service) fillTicketCount(summary *Summary) {
	tickets, err := s.tickets.GetAll()
	if err != nil {
		s.logger.Error("dashboard: failed to list tickets", "error", err)
		return
	}
	for _, t := range tickets {
		if !t.IsClosed() {
			summary.OpenTickets++
		}
	}
}

func (s *Service) countRenewals(status string) int {
	requests, err := s.renewals.List(status)
	if err != nil {
		s.logger.Error("dashboard: failed to list renewal requests", "status", status, "error", err)
		return 0
	}
	return len(requests)
}

func (s *Service) fillOfficerView(summary *Summary, userID int64) {
	if o, err := s.officers.GetByUserID(userID); err == nil {
		summary.ContractStatus = officer.ContractStatus(o.ContractEndDate, time.Now())
	}

	notices, err := s.notifications.GetForUser(userID)
	if err != nil {
		return
	}
	for _, n := range notices {
		if !n.Read {
			summary.UnreadNotices++
		}
	}
}
