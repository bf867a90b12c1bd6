package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSnapshotDefaults(t *testing.T) {
	snap, err := ParseSnapshot([]byte(`{}`))
	assert.Nil(t, err)

	assert.EqualValues(t, 0, snap.Ping.WS)
	assert.EqualValues(t, 0, snap.Ping.REST)
	assert.EqualValues(t, 0, snap.ServerInstalls)
	assert.EqualValues(t, 0, snap.UserInstalls)
	assert.EqualValues(t, 0, snap.RAM)
	assert.EqualValues(t, 0, snap.LastReboot)
	assert.EqualValues(t, 0, snap.Users)
	assert.EqualValues(t, 0, snap.AvgUsersServer)
	assert.EqualValues(t, 0, snap.Interactions.PerSecond)
	assert.EqualValues(t, 0, snap.Interactions.PerMinute)
	assert.EqualValues(t, 0, snap.Interactions.PerHour)

	assert.EqualValues(t, 1337, snap.Me.ID)
	assert.Equal(t, "NotFound", snap.Me.Username)
	assert.Equal(t, "0000", snap.Me.Discriminator)
	assert.Equal(t, "NotFound#0000", snap.String())
}

func TestParseSnapshotFull(t *testing.T) {
	payload := `{
		"@me": {"id": 42, "username": "xela", "discriminator": "0001", "avatar": "abc"},
		"ping": {"type": "ms", "ws": 42, "rest": 55},
		"server_installs": 10,
		"user_installs": 7,
		"ram": 512,
		"database": 900,
		"last_reboot": 1700000000,
		"users": 12345,
		"avg_users_server": 3.5,
		"interactions": {"per_second": 0.5, "per_minute": 30, "per_hour": 1800}
	}`
	snap, err := ParseSnapshot([]byte(payload))
	assert.Nil(t, err)

	assert.EqualValues(t, 42, snap.Ping.WS)
	assert.EqualValues(t, 55, snap.Ping.REST)
	assert.EqualValues(t, 10, snap.ServerInstalls)
	assert.EqualValues(t, 7, snap.UserInstalls)
	assert.EqualValues(t, 512, snap.RAM)
	assert.EqualValues(t, 900, snap.Database)
	assert.EqualValues(t, 12345, snap.Users)
	assert.EqualValues(t, 3.5, snap.AvgUsersServer)
	assert.EqualValues(t, 1800, snap.Interactions.PerHour)
	assert.Equal(t, "xela#0001", snap.String())
	assert.Equal(t, "https://cdn.discordapp.com/avatars/42/abc.png?size=512", snap.AvatarURL())
}

func TestParseSnapshotMalformed(t *testing.T) {
	_, err := ParseSnapshot([]byte(`not json`))
	assert.NotNil(t, err)
}

func TestSnapshotDegraded(t *testing.T) {
	snap, err := ParseSnapshot([]byte(`{"ping":{"type":"ms","ws":42,"rest":55},"server_installs":10,"ram":512}`))
	assert.Nil(t, err)

	degraded := snap.Degraded()
	assert.EqualValues(t, 0, degraded.Ping.WS)
	assert.EqualValues(t, 0, degraded.Ping.REST)
	assert.Equal(t, "ms", degraded.Ping.Type)
	// everything else stays stale
	assert.EqualValues(t, 10, degraded.ServerInstalls)
	assert.EqualValues(t, 512, degraded.RAM)

	// the original is untouched
	assert.EqualValues(t, 42, snap.Ping.WS)
}
