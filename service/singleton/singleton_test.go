package singleton

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xelaorg/xela-status/model"
)

// initTest resets the package state against an isolated in-memory database.
func initTest(t *testing.T) {
	Init()
	Conf.CacheTTL = 3
	Conf.RefreshInterval = 5
	Conf.HistoryWindow = 30
	Conf.Upstream.StatusPageURL = "https://status.example.com/"

	var err error
	DB, err = gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	assert.Nil(t, err)
	assert.Nil(t, DB.AutoMigrate(model.PingHistory{}))

	currentSnapshot = model.Snapshot{}
	currentIndicator = model.StatusIndicator{}
	currentMetricSample = 0
	recentPingHistory = nil
	LoadServiceStatus()
}
