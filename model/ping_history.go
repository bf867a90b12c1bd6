package model

import "time"

// PingHistory is one persisted telemetry row. Rows are written once by the
// refresh loop and never updated or deleted.
type PingHistory struct {
	ID             uint64    `gorm:"primaryKey" json:"-"`
	CreatedAt      time.Time `gorm:"index;<-:create" json:"created_at"`
	ServerInstalls uint64    `json:"server_installs"`
	UserInstalls   uint64    `json:"user_installs"`
	PingWS         int64     `gorm:"column:ping_ws" json:"ping_ws"`
	PingREST       int64     `gorm:"column:ping_rest" json:"ping_rest"`
	PingStatusFeed int64     `gorm:"column:ping_status_feed" json:"ping_status_feed"`
}
