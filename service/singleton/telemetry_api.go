package singleton

import (
	"github.com/xelaorg/xela-status/model"
)

var TelemetryAPI = &TelemetryAPIService{}

// TelemetryAPIService is the read surface handed to the web layer. Both
// calls only read already-published state and never trigger a fetch;
// staleness is bounded by the refresh interval alone.
type TelemetryAPIService struct{}

// Latest merges the current snapshot, status indicator and metric sample
// into one response.
func (s *TelemetryAPIService) Latest() *model.TelemetryLatest {
	snap := CurrentSnapshot()
	return &model.TelemetryLatest{
		Status:         CurrentStatusIndicator(),
		PingWS:         snap.Ping.WS,
		PingREST:       snap.Ping.REST,
		PingStatusFeed: CurrentMetricSample(),
		ServerInstalls: snap.ServerInstalls,
		UserInstalls:   snap.UserInstalls,
		RAM:            snap.RAM,
		LastReboot:     snap.LastReboot,
		ViewableUsers:  snap.Users,
		AvgUsersServer: snap.AvgUsersServer,
		Interactions:   snap.Interactions,
	}
}

// History ..
func (s *TelemetryAPIService) History() []model.PingHistory {
	return RecentPingHistory()
}
