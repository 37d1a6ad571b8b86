package models

import "time"

// Role определяет уровень доступа пользователя
type Role string

const (
	RoleSuperUser  Role = "super_user" // администратор, управляет пользователями
	RoleTechnician Role = "technician" // сервисный техник
)

// Valid сообщает, входит ли роль в известный набор
func (r Role) Valid() bool {
	return r == RoleSuperUser || r == RoleTechnician
}

// User представляет пользователя мобильного приложения и портала.
// Пользователи не удаляются физически: их только обновляют или деактивируют.
type User struct {
	CreatedAt   time.Time  `json:"createdAt"`           // время создания
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"` // nil у старых записей
	ID          string     `json:"id"`                  // UUID пользователя
	Username    string     `json:"username"`            // уникальный login
	DisplayName string     `json:"name"`                // отображаемое имя
	Role        Role       `json:"role"`
	Active      bool       `json:"isActive"`
}

// RecordID returns the stable identifier used by the merge resolver.
func (u User) RecordID() string { return u.ID }

// ModifiedAt returns UpdatedAt or the zero time when it is absent.
func (u User) ModifiedAt() time.Time {
	if u.UpdatedAt == nil {
		return time.Time{}
	}
	return *u.UpdatedAt
}

// Clone returns a copy that does not share UpdatedAt with the source.
func (u User) Clone() User {
	c := u
	if u.UpdatedAt != nil {
		upd := *u.UpdatedAt
		c.UpdatedAt = &upd
	}
	return c
}

// IsSuperUser reports whether the user has administrative scope.
func (u User) IsSuperUser() bool {
	return u.Role == RoleSuperUser
}
