package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xelaorg/xela-status/model"
	"github.com/xelaorg/xela-status/service/singleton"
)

type telemetryAPI struct {
	r gin.IRouter
}

func (ta *telemetryAPI) serve() {
	r := ta.r.Group("")
	r.GET("/telemetry", ta.telemetry)
	r.GET("/history", ta.history)
}

// telemetry serves the selector endpoint
// query: show (comma separated, any of "latest" and "history")
func (ta *telemetryAPI) telemetry(c *gin.Context) {
	payload := gin.H{}
	for _, section := range strings.Split(c.Query("show"), ",") {
		switch strings.TrimSpace(section) {
		case "latest":
			payload["latest"] = singleton.TelemetryAPI.Latest()
		case "history":
			payload["history"] = singleton.TelemetryAPI.History()
		}
	}
	if len(payload) == 0 {
		c.JSON(http.StatusBadRequest, model.Response{
			Code:    http.StatusBadRequest,
			Message: "show must select at least one of latest,history",
		})
		return
	}
	c.JSON(http.StatusOK, payload)
}

// history serves the legacy combined payload
func (ta *telemetryAPI) history(c *gin.Context) {
	latest := singleton.TelemetryAPI.Latest()
	c.JSON(http.StatusOK, gin.H{
		"current": gin.H{
			"ping_ws":         latest.PingWS,
			"ping_rest":       latest.PingREST,
			"server_installs": latest.ServerInstalls,
			"user_installs":   latest.UserInstalls,
		},
		"history": singleton.TelemetryAPI.History(),
	})
}
