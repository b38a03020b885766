// Package kernel assembles the HTTP middleware stack shared by every
// route.
package kernel

import (
	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/metrics"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/middleware"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/reqid"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/router"
)

// NewHTTPKernel returns a router with the standard middleware applied,
// outermost first: request id, logging, panic recovery, CORS, rate
// limiting, metrics.
func NewHTTPKernel() *router.Router {
	r := router.New()
	r.Use(
		reqid.Middleware(),
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(config.RateLimitPerSec(), config.RateLimitBurst()),
		metrics.Middleware(),
	)
	return r
}
