package models

import "time"

// TicketStatus статус сервисного тикета
type TicketStatus string

const (
	TicketInProgress TicketStatus = "in_progress"
	TicketCompleted  TicketStatus = "completed" // терминальный статус
)

// Operation выполненная на устройстве операция
type Operation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SparePart использованная запчасть, Quantity >= 1
type SparePart struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ServiceTicket представляет сервисный тикет техника.
// Operations и SpareParts принадлежат тикету и синхронизируются вместе с ним.
type ServiceTicket struct {
	StartTime      time.Time    `json:"startTime"`
	EndTime        *time.Time   `json:"endTime,omitempty"`
	UpdatedAt      *time.Time   `json:"updatedAt,omitempty"`
	ID             string       `json:"id"`
	DeviceCode     string       `json:"deviceCode"`
	DeviceLocation string       `json:"deviceLocation,omitempty"`
	TechnicianID   string       `json:"technicianId"`
	TechnicianName string       `json:"technicianName"`
	Status         TicketStatus `json:"status"`
	Notes          string       `json:"notes,omitempty"`
	Operations     []Operation  `json:"operations"`
	SpareParts     []SparePart  `json:"spareParts"`
}

// RecordID returns the stable identifier used by the merge resolver.
func (t ServiceTicket) RecordID() string { return t.ID }

// ModifiedAt returns UpdatedAt or the zero time when it is absent.
func (t ServiceTicket) ModifiedAt() time.Time {
	if t.UpdatedAt == nil {
		return time.Time{}
	}
	return *t.UpdatedAt
}

// IsCompleted reports whether the ticket reached its terminal status.
func (t ServiceTicket) IsCompleted() bool {
	return t.Status == TicketCompleted
}

// Clone возвращает копию тикета с собственными срезами операций и запчастей,
// чтобы изменения копии не затрагивали коллекцию-источник.
func (t ServiceTicket) Clone() ServiceTicket {
	c := t
	if t.Operations != nil {
		c.Operations = append([]Operation(nil), t.Operations...)
	}
	if t.SpareParts != nil {
		c.SpareParts = append([]SparePart(nil), t.SpareParts...)
	}
	if t.EndTime != nil {
		end := *t.EndTime
		c.EndTime = &end
	}
	if t.UpdatedAt != nil {
		upd := *t.UpdatedAt
		c.UpdatedAt = &upd
	}
	return c
}
