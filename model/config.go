package model

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config ..
type Config struct {
	Debug  bool
	Listen string

	Site struct {
		Brand string
	}

	Upstream struct {
		StatsEndpoint  string // first-party operational stats, JSON
		StatusPageURL  string // canonical status page, shown to users
		IncidentsURL   string // unresolved incidents feed
		MetricsFeedURL string // status-feed latency metrics
	}

	CacheTTL        uint64 // seconds between actual upstream stats fetches
	RefreshInterval uint64 // seconds between scheduler cycles
	HistoryWindow   int    // rows served by the recent-history view

	DatabaseLocation string
}

// Read loads the config file at path, filling defaults for unset keys.
func (c *Config) Read(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	if err := viper.Unmarshal(c); err != nil {
		return err
	}

	if c.Listen == "" {
		c.Listen = ":8008"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 3
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 5
	}
	if c.HistoryWindow == 0 {
		c.HistoryWindow = 30
	}
	if c.DatabaseLocation == "" {
		c.DatabaseLocation = "data/storage.db"
	}

	viper.OnConfigChange(func(in fsnotify.Event) {
		viper.Unmarshal(c)
	})
	go viper.WatchConfig()

	return nil
}
