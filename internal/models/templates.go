package models

import "time"

// OperationTemplate шаблон операции, который администратор настраивает на портале
type OperationTemplate struct {
	CreatedAt   time.Time `json:"createdAt"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"isActive"`
}

// SparePartTemplate шаблон запчасти с единицей измерения ("kom", "m")
type SparePartTemplate struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Active    bool      `json:"isActive"`
}

// Backup описывает снимок данных портала
type Backup struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Checksum  string    `json:"checksum"` // BLAKE3, hex
	Size      int64     `json:"size"`
	Users     int       `json:"users"`
	Tickets   int       `json:"tickets"`
}

// WorkdayAction открытие или закрытие рабочего дня
type WorkdayAction string

const (
	WorkdayOpen  WorkdayAction = "open"
	WorkdayClose WorkdayAction = "close"
)

// WorkdayEntry запись журнала рабочего дня техника
type WorkdayEntry struct {
	At     time.Time     `json:"at"`
	UserID string        `json:"userId"`
	Action WorkdayAction `json:"action"`
	Reason string        `json:"reason,omitempty"`
}
