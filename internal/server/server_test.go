// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-keeper/internal/config"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

func TestNewServer_Validation(t *testing.T) {
	_, err := NewServer(nil, config.DevAPIConfig{Address: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlerProvided)

	_, err = NewServer(okHandler(), config.DevAPIConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	s, err := NewServer(okHandler(), config.DevAPIConfig{Address: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestRunServer_ServesUntilContextDone(t *testing.T) {
	s, err := NewServer(okHandler(), config.DevAPIConfig{Address: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	addr := make(chan string, 1)
	impl := s.(*server)
	impl.listen = func(network, address string) (net.Listener, error) {
		ln, err := net.Listen(network, address)
		if err == nil {
			addr <- ln.Addr().String()
		}
		return ln, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	var address string
	select {
	case address = <-addr:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get("http://" + address + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	s, err := NewServer(okHandler(), config.DevAPIConfig{Address: "256.0.0.1:1"}, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())
	assert.Error(t, err)
}
