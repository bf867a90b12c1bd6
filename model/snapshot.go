package model

import (
	"fmt"

	"github.com/xelaorg/xela-status/pkg/utils"
)

// BotIdentity ..
type BotIdentity struct {
	ID            uint64 `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
}

// PingReport ..
type PingReport struct {
	Type string `json:"type"`
	WS   int64  `json:"ws"`
	REST int64  `json:"rest"`
}

// InteractionRates ..
type InteractionRates struct {
	PerSecond float64 `json:"per_second"`
	PerMinute float64 `json:"per_minute"`
	PerHour   float64 `json:"per_hour"`
}

// Snapshot is one complete, defaulted view of the bot's operational stats.
// Omitted upstream keys decode to zero values, so a snapshot is never
// partially undefined.
type Snapshot struct {
	Me             BotIdentity      `json:"@me"`
	Ping           PingReport       `json:"ping"`
	ServerInstalls uint64           `json:"server_installs"`
	UserInstalls   uint64           `json:"user_installs"`
	RAM            uint64           `json:"ram"`
	Database       uint64           `json:"database"`
	LastReboot     int64            `json:"last_reboot"`
	Users          uint64           `json:"users"`
	AvgUsersServer float64          `json:"avg_users_server"`
	Interactions   InteractionRates `json:"interactions"`
}

// ParseSnapshot decodes an operational-stats payload, applying identity
// defaults once at parse time.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := utils.Json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	if s.Me.ID == 0 {
		s.Me.ID = 1337
	}
	if s.Me.Username == "" {
		s.Me.Username = "NotFound"
	}
	if s.Me.Discriminator == "" {
		s.Me.Discriminator = "0000"
	}
	return s, nil
}

// Degraded returns a copy with the ping fields zeroed and everything else
// left stale, used when a stats fetch fails.
func (s Snapshot) Degraded() Snapshot {
	s.Ping = PingReport{Type: "ms"}
	return s
}

func (s Snapshot) AvatarURL() string {
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%d/%s.png?size=512", s.Me.ID, s.Me.Avatar)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s#%s", s.Me.Username, s.Me.Discriminator)
}
