package commands

import (
	"fmt"
	"strings"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHallNotFound            = errs.New("hall not found")
	ErrHallInactive            = errs.New("hall inactive")
	ErrRequestNotFound         = errs.New("request not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrValidation              = errs.New("validation failed")
	ErrAlreadyDecided          = errs.New("request already decided")
	ErrForbidden               = errs.New("forbidden")
	ErrInvalidState            = errs.New("invalid state for operation")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ConflictError reports which halls collided and with what, so callers can
// render specific guidance. Stale marks an approval-time re-check failure:
// the world changed between load and commit.
type ConflictError struct {
	Stale           bool
	BlockingHalls   []uuid.UUID
	BlockingRecords []reservation.RecordRef
}

func (e *ConflictError) Error() string {
	ids := make([]string, len(e.BlockingHalls))
	for i, id := range e.BlockingHalls {
		ids[i] = id.String()
	}
	if e.Stale {
		return fmt.Sprintf("conflicting allocation approved first on halls [%s]", strings.Join(ids, ", "))
	}
	return fmt.Sprintf("window blocked on halls [%s]", strings.Join(ids, ", "))
}

func newConflictError(v reservation.Verdict, stale bool) *ConflictError {
	return &ConflictError{
		Stale:           stale,
		BlockingHalls:   v.BlockingHalls,
		BlockingRecords: v.BlockingRecords,
	}
}
