package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/fieldsync/internal/models"
)

var (
	ErrEmptyDeviceCode    = errors.New("device code cannot be empty")
	ErrInvalidQuantity    = errors.New("spare part quantity must be at least 1")
	ErrInvalidStatus      = errors.New("invalid ticket status")
	ErrEmptyOperationName = errors.New("operation name cannot be empty")
)

// ValidateTicket проверяет тикет, созданный или измененный на устройстве.
// Ошибка означает, что тикет нельзя сохранять.
func ValidateTicket(t models.ServiceTicket) error {
	if strings.TrimSpace(t.DeviceCode) == "" {
		return ErrEmptyDeviceCode
	}
	if t.Status != models.TicketInProgress && t.Status != models.TicketCompleted {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	for _, op := range t.Operations {
		if strings.TrimSpace(op.Name) == "" {
			return ErrEmptyOperationName
		}
	}
	for _, sp := range t.SpareParts {
		if sp.Quantity < 1 {
			return fmt.Errorf("%w: %s has %d", ErrInvalidQuantity, sp.Name, sp.Quantity)
		}
	}
	return nil
}

// CheckTicket возвращает предупреждения о качестве данных.
// Такие тикеты все равно синхронизируются: портал мог прислать их в этом виде.
func CheckTicket(t models.ServiceTicket) []string {
	var warnings []string

	if t.IsCompleted() && t.EndTime == nil {
		warnings = append(warnings, "completed ticket has no end time")
	}
	if !t.IsCompleted() && t.EndTime != nil {
		warnings = append(warnings, "ticket in progress has an end time")
	}
	if t.EndTime != nil && t.EndTime.Before(t.StartTime) {
		warnings = append(warnings, "end time is before start time")
	}
	if t.TechnicianID == "" {
		warnings = append(warnings, "ticket has no technician")
	}

	seen := make(map[string]struct{}, len(t.Operations))
	for _, op := range t.Operations {
		if _, dup := seen[op.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("duplicate operation id %q", op.ID))
		}
		seen[op.ID] = struct{}{}
	}

	return warnings
}
