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

package core

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// StatusModuleName is the name of the status engine.
const StatusModuleName = "Status"

type status struct {
	system    *System
	startTime time.Time
}

// NewStatusEngine creates a new engine that exposes the system's health and diagnostics.
func NewStatusEngine(system *System) Engine {
	return &status{
		system:    system,
		startTime: time.Now(),
	}
}

func (s *status) Name() string {
	return StatusModuleName
}

func (s *status) Routes(router EchoRouter) {
	router.GET("/status", s.statusOK)
	router.GET("/status/diagnostics", s.diagnosticsOverview)
}

// statusOK returns 200 OK with a "OK" body.
func (s *status) statusOK(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}

func (s *status) diagnosticsOverview(ctx echo.Context) error {
	if strings.Contains(ctx.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return ctx.JSON(http.StatusOK, s.diagnosticsSummaryAsMap())
	}
	return ctx.String(http.StatusOK, s.diagnosticsSummaryAsText())
}

func (s *status) diagnosticsSummaryAsText() string {
	var lines []string
	s.system.VisitEngines(func(engine Engine) {
		diagnosable, ok := engine.(Diagnosable)
		if !ok {
			return
		}
		named, ok := engine.(Named)
		if !ok {
			return
		}
		lines = append(lines, named.Name())
		for _, d := range diagnosable.Diagnostics() {
			lines = append(lines, fmt.Sprintf("\t%s: %s", d.Name(), d.String()))
		}
	})
	return strings.Join(lines, "\n")
}

func (s *status) diagnosticsSummaryAsMap() map[string]map[string]interface{} {
	result := map[string]map[string]interface{}{}
	s.system.VisitEngines(func(engine Engine) {
		diagnosable, ok := engine.(Diagnosable)
		if !ok {
			return
		}
		named, ok := engine.(Named)
		if !ok {
			return
		}
		entries := map[string]interface{}{}
		for _, d := range diagnosable.Diagnostics() {
			entries[d.Name()] = d.Result()
		}
		result[named.Name()] = entries
	})
	return result
}

// Diagnostics returns list of DiagnosticResult for the status engine.
// The results are a list of all registered engines and the server uptime.
func (s *status) Diagnostics() []DiagnosticResult {
	return []DiagnosticResult{
		GenericDiagnosticResult{Title: "registered_engines", Outcome: s.listAllEngines()},
		GenericDiagnosticResult{Title: "uptime", Outcome: time.Since(s.startTime).Truncate(time.Second).String()},
	}
}

func (s *status) listAllEngines() []string {
	var names []string
	s.system.VisitEngines(func(engine Engine) {
		if named, ok := engine.(Named); ok {
			names = append(names, named.Name())
		}
	})
	return names
}
