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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("formats the message", func(t *testing.T) {
		err := NotFoundError("alarm %d not found", 5)

		assert.EqualError(t, err, "alarm 5 not found")
		assert.Equal(t, http.StatusNotFound, err.(HTTPStatusCodeError).StatusCode())
	})
	t.Run("wrapped errors stay resolvable", func(t *testing.T) {
		cause := errors.New("underlying")

		err := InvalidInputError("something failed: %w", cause)

		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, http.StatusBadRequest, err.(HTTPStatusCodeError).StatusCode())
	})
	t.Run("errors with equal status codes match", func(t *testing.T) {
		assert.True(t, errors.Is(NotFoundError("a"), NotFoundError("b")))
		assert.False(t, errors.Is(NotFoundError("a"), InvalidInputError("a")))
	})
}

func TestResolveStatusCode(t *testing.T) {
	sentinel := errors.New("sentinel")

	t.Run("mapped", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, ResolveStatusCode(sentinel, map[error]int{sentinel: http.StatusConflict}))
	})
	t.Run("unmapped", func(t *testing.T) {
		assert.Equal(t, 0, ResolveStatusCode(errors.New("other"), map[error]int{sentinel: http.StatusConflict}))
	})
}

type staticResolver struct {
	code int
}

func (r staticResolver) ResolveStatusCode(_ error) int {
	return r.code
}

func TestGetHTTPStatusCode(t *testing.T) {
	newContext := func() echo.Context {
		return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	}

	t.Run("predefined status code", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, GetHTTPStatusCode(NotFoundError("nope"), newContext()))
	})
	t.Run("echo error", func(t *testing.T) {
		assert.Equal(t, http.StatusTeapot, GetHTTPStatusCode(echo.NewHTTPError(http.StatusTeapot), newContext()))
	})
	t.Run("resolver from context", func(t *testing.T) {
		ctx := newContext()
		ctx.Set(StatusCodeResolverContextKey, staticResolver{code: http.StatusConflict})

		assert.Equal(t, http.StatusConflict, GetHTTPStatusCode(errors.New("custom"), ctx))
	})
	t.Run("unresolvable errors become internal server errors", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("custom"), newContext()))
	})
}

func TestCreateHTTPErrorHandler(t *testing.T) {
	handle := func(err error, operationID string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), recorder)
		if operationID != "" {
			ctx.Set(OperationIDContextKey, operationID)
		}
		CreateHTTPErrorHandler()(err, ctx)
		return recorder
	}

	t.Run("problem details with operation title", func(t *testing.T) {
		response := handle(NotFoundError("it is missing"), "GetAlarm")

		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.Contains(t, response.Header().Get(echo.HeaderContentType), "application/problem+json")
		assert.Contains(t, response.Body.String(), "GetAlarm failed")
		assert.Contains(t, response.Body.String(), "it is missing")
	})
	t.Run("unknown operation", func(t *testing.T) {
		response := handle(errors.New("boom"), "")

		assert.Equal(t, http.StatusInternalServerError, response.Code)
		assert.Contains(t, response.Body.String(), "Operation failed")
	})
	t.Run("echo binding errors keep their status code", func(t *testing.T) {
		response := handle(echo.NewHTTPError(http.StatusBadRequest, "malformed"), "CreateAlarm")

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "malformed")
	})
}
