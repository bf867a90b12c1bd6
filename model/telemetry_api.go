package model

// TelemetryLatest ..
type TelemetryLatest struct {
	Status         StatusIndicator  `json:"status"`
	PingWS         int64            `json:"ping_ws"`
	PingREST       int64            `json:"ping_rest"`
	PingStatusFeed int64            `json:"ping_status_feed"`
	ServerInstalls uint64           `json:"server_installs"`
	UserInstalls   uint64           `json:"user_installs"`
	RAM            uint64           `json:"ram"`
	LastReboot     int64            `json:"last_reboot"`
	ViewableUsers  uint64           `json:"viewable_users"`
	AvgUsersServer float64          `json:"avg_users_server"`
	Interactions   InteractionRates `json:"interactions"`
}
