package models

import "time"

// ClientState is a namespaced blob of client-side state, the server-side counterpart of a
// browser local-storage entry.
type ClientState struct {
	ClientID  string    `gorm:"primaryKey;type:varchar(64)"`
	Namespace string    `gorm:"primaryKey;type:varchar(64)"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time
}
