package singleton

import (
	"context"
	"log"
	"sync"

	"github.com/xelaorg/xela-status/model"
	"github.com/xelaorg/xela-status/pkg/utils"
)

var (
	statusLock          sync.RWMutex
	currentIndicator    model.StatusIndicator
	currentMetricSample int64
)

// LoadServiceStatus ..
func LoadServiceStatus() {
	statusLock.Lock()
	defer statusLock.Unlock()
	currentIndicator = model.NewStatusIndicator(model.IncidentFeed{}, Conf.Upstream.StatusPageURL)
}

// RefreshServiceStatus polls the unresolved-incidents feed and the metrics
// feed. The two fetches fail independently; failures are logged and absorbed
// here, never propagated.
func RefreshServiceStatus(ctx context.Context) {
	refreshIndicator(ctx)
	refreshMetricSample(ctx)
}

func refreshIndicator(ctx context.Context) {
	body, err := utils.GetJSON(ctx, utils.HttpClient, Conf.Upstream.IncidentsURL)
	if err != nil {
		log.Printf("XELA> incidents fetch failed: %v", err)
		return
	}
	var feed model.IncidentFeed
	if err := utils.Json.Unmarshal(body, &feed); err != nil {
		log.Printf("XELA> incidents feed malformed: %v", err)
		return
	}

	statusLock.Lock()
	currentIndicator = model.NewStatusIndicator(feed, Conf.Upstream.StatusPageURL)
	statusLock.Unlock()
}

func refreshMetricSample(ctx context.Context) {
	body, err := utils.GetJSON(ctx, utils.HttpClient, Conf.Upstream.MetricsFeedURL)
	if err != nil {
		log.Printf("XELA> metrics fetch failed: %v", err)
		return
	}
	// last data point of the first metric series; 0 on an empty or
	// malformed feed
	sample, err := utils.GjsonLastValue(body, "metrics.0.data")
	if err != nil {
		sample = 0
	}

	statusLock.Lock()
	currentMetricSample = sample
	statusLock.Unlock()
}

// CurrentStatusIndicator ..
func CurrentStatusIndicator() model.StatusIndicator {
	statusLock.RLock()
	defer statusLock.RUnlock()
	return currentIndicator
}

// CurrentMetricSample ..
func CurrentMetricSample() int64 {
	statusLock.RLock()
	defer statusLock.RUnlock()
	return currentMetricSample
}
