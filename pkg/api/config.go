package api

import "github.com/iudanet/fieldsync/internal/models"

// OperationsData полезная нагрузка GET /api/config/operations
type OperationsData struct {
	Operations []models.OperationTemplate `json:"operations"`
}

// OperationsResponse ответ GET /api/config/operations
type OperationsResponse struct {
	Message string         `json:"message,omitempty"`
	Data    OperationsData `json:"data"`
	Success bool           `json:"success"`
}

// SparePartsData полезная нагрузка GET /api/config/spare-parts
type SparePartsData struct {
	SpareParts []models.SparePartTemplate `json:"spareParts"`
}

// SparePartsResponse ответ GET /api/config/spare-parts
type SparePartsResponse struct {
	Message string         `json:"message,omitempty"`
	Data    SparePartsData `json:"data"`
	Success bool           `json:"success"`
}

// BackupsResponse ответ GET /api/backup
type BackupsResponse struct {
	Message string          `json:"message,omitempty"`
	Backups []models.Backup `json:"backups"`
	Success bool            `json:"success"`
}

// RestoreBackupRequest тело POST /api/backup/restore
type RestoreBackupRequest struct {
	Filename string `json:"filename"`
}

// WorkdayRequest тело POST /api/workday/open и /api/workday/close
type WorkdayRequest struct {
	UserID string `json:"userId"`
	Reason string `json:"reason,omitempty"`
}
