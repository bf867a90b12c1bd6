package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xelaorg/xela-status/service/singleton"
)

// ServeWeb ..
func ServeWeb(addr string) *http.Server {
	if !singleton.Conf.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routers(r)
	return &http.Server{
		Addr:    addr,
		Handler: r,
	}
}

func routers(r *gin.Engine) {
	api := r.Group("api")
	{
		ta := &telemetryAPI{api}
		ta.serve()
	}
}
