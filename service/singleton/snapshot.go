package singleton

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/xelaorg/xela-status/model"
	"github.com/xelaorg/xela-status/pkg/utils"
)

// Cache key guarding the stats endpoint; while it is live the TTL has not
// expired and FetchSnapshot performs no I/O.
const snapshotFetchKey = "snapshot_last_fetch"

var (
	snapshotLock    sync.RWMutex
	currentSnapshot model.Snapshot
)

// FetchSnapshot refreshes the current snapshot from the operational-stats
// endpoint. The second return value reports whether a fetch attempt was made;
// inside the TTL window the cached snapshot is returned unchanged. A failed
// attempt still re-arms the TTL so failures do not turn into tight retry
// loops, and yields a degraded copy of the previous snapshot with the ping
// fields zeroed.
func FetchSnapshot(ctx context.Context) (model.Snapshot, bool) {
	if _, ok := Cache.Get(snapshotFetchKey); ok {
		return CurrentSnapshot(), false
	}

	snap, err := fetchSnapshot(ctx, Conf.Upstream.StatsEndpoint)

	snapshotLock.Lock()
	if err != nil {
		log.Printf("XELA> stats fetch failed: %v", err)
		currentSnapshot = currentSnapshot.Degraded()
	} else {
		currentSnapshot = snap
	}
	snapshotLock.Unlock()

	Cache.Set(snapshotFetchKey, time.Now(), time.Duration(Conf.CacheTTL)*time.Second)

	return CurrentSnapshot(), true
}

func fetchSnapshot(ctx context.Context, url string) (model.Snapshot, error) {
	// the stats endpoint is usually self-hosted behind a self-signed cert
	body, err := utils.GetJSON(ctx, utils.HttpClientSkipTlsVerify, url)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.ParseSnapshot(body)
}

// CurrentSnapshot ..
func CurrentSnapshot() model.Snapshot {
	snapshotLock.RLock()
	defer snapshotLock.RUnlock()
	return currentSnapshot
}
