package commands

import (
	"context"

	"github.com/google/uuid"
)

// Lifecycle event routing keys. Exactly one event is published per successful
// transition; delivery is fire-and-forget relative to the core transaction.
const (
	TopicRequestCreated  = "request.created"
	TopicRequestApproved = "request.approved"
	TopicRequestRejected = "request.rejected"
)

// EventPublisher is the outbound boundary to the notification collaborator.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type RequestEventPayload struct {
	RequestID     uuid.UUID   `json:"request_id"`
	RequesterID   uuid.UUID   `json:"requester_id"`
	RequesterRole string      `json:"requester_role"`
	HallIDs       []uuid.UUID `json:"hall_ids"`
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	StartTime     string      `json:"start_time"`
	EndTime       string      `json:"end_time"`
	Purpose       string      `json:"purpose"`
	AttendeeCount int         `json:"attendee_count,omitempty"`
	AdminNote     *string     `json:"admin_note,omitempty"`
	Reason        string      `json:"reason,omitempty"`
}
