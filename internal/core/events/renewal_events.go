package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeRenewalSubmitted   = "renewal.submitted"
	EventTypeRenewalRecommended = "renewal.recommended"
	EventTypeRenewalDecided     = "renewal.decided"
)

type RenewalSubmittedEvent struct {
	BaseEvent
	RequestID     int64  `json:"request_id"`
	OfficerID     int64  `json:"officer_id"`
	OfficerUserID int64  `json:"officer_user_id"`
	OfficerName   string `json:"officer_name"`
}

func NewRenewalSubmittedEvent(requestID, officerID, officerUserID int64, officerName string) *RenewalSubmittedEvent {
	return &RenewalSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRenewalSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id":      requestID,
				"officer_id":      officerID,
				"officer_user_id": officerUserID,
				"officer_name":    officerName,
			},
		},
		RequestID:     requestID,
		OfficerID:     officerID,
		OfficerUserID: officerUserID,
		OfficerName:   officerName,
	}
}

type RenewalRecommendedEvent struct {
	BaseEvent
	RequestID      int64  `json:"request_id"`
	OfficerUserID  int64  `json:"officer_user_id"`
	Recommendation string `json:"recommendation"`
}

func NewRenewalRecommendedEvent(requestID, officerUserID int64, recommendation string) *RenewalRecommendedEvent {
	return &RenewalRecommendedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRenewalRecommended,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id":      requestID,
				"officer_user_id": officerUserID,
				"recommendation":  recommendation,
			},
		},
		RequestID:      requestID,
		OfficerUserID:  officerUserID,
		Recommendation: recommendation,
	}
}

type RenewalDecidedEvent struct {
	BaseEvent
	RequestID     int64  `json:"request_id"`
	OfficerUserID int64  `json:"officer_user_id"`
	Decision      string `json:"decision"`
}

func NewRenewalDecidedEvent(requestID, officerUserID int64, decision string) *RenewalDecidedEvent {
	return &RenewalDecidedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRenewalDecided,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id":      requestID,
				"officer_user_id": officerUserID,
				"decision":        decision,
			},
		},
		RequestID:     requestID,
		OfficerUserID: officerUserID,
		Decision:      decision,
	}
}
