// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return newHandler(testCfg, bcrypt.MinCost, &logger.Logger{Logger: zerolog.New(buf)})
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		seen = w.Header().Get(traceIDHeader)
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "req-123")
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(traceIDHeader))
		assert.Equal(t, "req-123", seen)
		assert.Contains(t, buf.String(), `"trace_id":"req-123"`)
	})

	t.Run("generates id when missing", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get(traceIDHeader), 36)
		assert.Contains(t, buf.String(), `"trace_id":"`)
	})
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("short"))
	})

	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	for _, want := range []string{`"method":"POST"`, `"uri":"/auth/login"`, `"status":418`, `"size":5`, `"duration":`} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("abc"))

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 3, w.size)
}
