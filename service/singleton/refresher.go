package singleton

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/xelaorg/xela-status/model"
)

var Cron *cron.Cron

// LoadRefresher registers and starts the perpetual refresh loop. Ticks that
// arrive while a cycle is still running are skipped, so at most one cycle is
// in flight.
func LoadRefresher() {
	Cron = cron.New(
		cron.WithSeconds(),
		cron.WithLocation(Loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	_, err := Cron.AddFunc(fmt.Sprintf("@every %ds", Conf.RefreshInterval), RefreshTelemetry)
	if err != nil {
		panic(err)
	}
	Cron.Start()
}

// StopRefresher stops the loop and waits for a running cycle to finish.
func StopRefresher() {
	if Cron == nil {
		return
	}
	<-Cron.Stop().Done()
}

// RefreshTelemetry runs one refresh cycle: ask the snapshot cache to
// refresh, refresh the service status, and record a history row iff a fetch
// attempt actually happened (a pure cache hit appends nothing).
func RefreshTelemetry() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Duration(Conf.RefreshInterval)*time.Second)
	defer cancel()

	snap, fetched := FetchSnapshot(ctx)
	RefreshServiceStatus(ctx)
	if !fetched {
		return
	}

	row := model.PingHistory{
		ServerInstalls: snap.ServerInstalls,
		UserInstalls:   snap.UserInstalls,
		PingWS:         snap.Ping.WS,
		PingREST:       snap.Ping.REST,
		PingStatusFeed: CurrentMetricSample(),
	}
	if err := RecordPingHistory(row); err != nil {
		log.Printf("XELA> history append failed: %v", err)
	}
}
