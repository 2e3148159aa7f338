/*
 * Clock node
 * Copyright (C) 2026 Clock community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/clock-app/clock-node/core"
	"github.com/clock-app/clock-node/http/log"
)

const moduleName = "HTTP"

// New returns a new HTTP engine. The callback is called when the HTTP server shuts down unexpectedly.
func New(serverShutdownCb func()) *Engine {
	return &Engine{
		serverShutdownCb: serverShutdownCb,
	}
}

// Engine is the HTTP engine.
type Engine struct {
	server           *echo.Echo
	address          string
	serverShutdownCb func()
}

// Router returns the router of the HTTP engine, which can be used by other engines to register HTTP handlers.
func (h *Engine) Router() core.EchoRouter {
	return h.server
}

// Name returns the name of the engine.
func (h *Engine) Name() string {
	return moduleName
}

// Configure creates the echo server and applies the middleware from the given configuration.
func (h *Engine) Configure(serverConfig core.ServerConfig) error {
	h.address = serverConfig.HTTP.Address
	h.server = echo.New()
	h.server.HideBanner = true
	h.server.HidePort = true
	h.server.HTTPErrorHandler = core.CreateHTTPErrorHandler()

	// Reverse proxies must set the X-Forwarded-For header to the original client IP.
	h.server.IPExtractor = echo.ExtractIPFromXFFHeader()

	// Skip request logging for calls to /metrics, /status, and /health
	loggerSkipper := func(c echo.Context) bool {
		for _, excludePath := range []string{"/metrics", "/status", "/health"} {
			if matchesPath(c.Request().RequestURI, excludePath) {
				return true
			}
		}
		return false
	}
	if serverConfig.HTTP.Log != core.HTTPLogNothingLevel {
		h.server.Use(requestLoggerMiddleware(loggerSkipper, log.Logger()))
	}
	if serverConfig.HTTP.Log == core.HTTPLogMetadataAndBodyLevel {
		h.server.Use(bodyLoggerMiddleware(loggerSkipper, log.Logger()))
	}

	if serverConfig.HTTP.CORS.Enabled() {
		log.Logger().Infof("Enabling CORS for HTTP interface: %s", h.address)
		if serverConfig.Strictmode {
			for _, origin := range serverConfig.HTTP.CORS.Origin {
				if strings.TrimSpace(origin) == "*" {
					return errors.New("wildcard CORS origin is not allowed in strict mode")
				}
			}
		}
		h.server.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: serverConfig.HTTP.CORS.Origin}))
	}

	return nil
}

// Start starts the HTTP server in the background.
func (h *Engine) Start() error {
	log.Logger().Infof("Starting HTTP interface on %s", h.address)
	go func(server *echo.Echo, address string, cancel func()) {
		if err := server.Start(address); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				log.Logger().
					WithError(err).
					Error("HTTP server stopped due to error")
			}
		}
		cancel()
	}(h.server, h.address, h.serverShutdownCb)
	return nil
}

// Shutdown shuts down the HTTP server.
func (h *Engine) Shutdown() error {
	return h.server.Shutdown(context.Background())
}

// matchesPath checks whether the request URI path hierarchically matches the given path.
func matchesPath(requestURI string, path string) bool {
	if path == "/" {
		return true
	}
	if !strings.HasSuffix(requestURI, "/") {
		requestURI += "/"
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return requestURI == path || strings.HasPrefix(requestURI, path)
}
