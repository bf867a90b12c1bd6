package singleton

import (
	"sync"

	"github.com/xelaorg/xela-status/model"
)

var (
	pingHistoryLock   sync.RWMutex
	recentPingHistory []model.PingHistory
)

// LoadPingHistory ..
func LoadPingHistory() {
	if err := updatePingHistoryCache(); err != nil {
		panic(err)
	}
}

// RecordPingHistory durably appends one telemetry row and recomputes the
// recent-window cache. The cache is left untouched when the insert fails so
// the served window never diverges from the log.
func RecordPingHistory(row model.PingHistory) error {
	if err := DB.Create(&row).Error; err != nil {
		return err
	}
	return updatePingHistoryCache()
}

// updatePingHistoryCache recomputes the window from the database instead of
// patching it incrementally, mirroring the query readers are promised.
func updatePingHistoryCache() error {
	var rows []model.PingHistory
	if err := DB.Order("created_at DESC").Limit(Conf.HistoryWindow).Find(&rows).Error; err != nil {
		return err
	}

	pingHistoryLock.Lock()
	recentPingHistory = rows
	pingHistoryLock.Unlock()
	return nil
}

// RecentPingHistory returns the newest-first recent window, at most
// Conf.HistoryWindow rows.
func RecentPingHistory() []model.PingHistory {
	pingHistoryLock.RLock()
	defer pingHistoryLock.RUnlock()
	ret := make([]model.PingHistory, len(recentPingHistory))
	copy(ret, recentPingHistory)
	return ret
}
