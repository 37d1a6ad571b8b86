// Package api описывает JSON-контракт между устройством и порталом.
package api

import "github.com/iudanet/fieldsync/internal/models"

// HealthResponse ответ GET /api/health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// PushUsersRequest тело POST /api/sync/users
type PushUsersRequest struct {
	Users []models.User `json:"users"`
}

// PushTicketsRequest тело POST /api/sync/tickets
type PushTicketsRequest struct {
	Tickets []models.ServiceTicket `json:"tickets"`
}

// WriteResponse общий ответ пишущих эндпоинтов
type WriteResponse struct {
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"` // только для POST /api/backup
	Count    int    `json:"count,omitempty"`
	Success  bool   `json:"success"`
}

// UsersResponse ответ GET /api/sync/users
type UsersResponse struct {
	Message string        `json:"message,omitempty"`
	Users   []models.User `json:"users"`
	Success bool          `json:"success"`
}

// TicketsResponse ответ GET /api/sync/tickets
type TicketsResponse struct {
	Message string                 `json:"message,omitempty"`
	Tickets []models.ServiceTicket `json:"tickets"`
	Success bool                   `json:"success"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}
