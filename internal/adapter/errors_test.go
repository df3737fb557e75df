package adapter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &APIError{Op: opLogin, Status: 400, Kind: KindUnauthorized})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNetwork)
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Op: opSignup, Status: 400, Kind: KindValidation, Detail: "taken"}
	assert.Equal(t, "signup: validation (http 400): taken", err.Error())

	netErr := &APIError{Op: opFetchProfile, Kind: KindNetwork, Err: errors.New("connection refused")}
	assert.Equal(t, "fetch profile: network: connection refused", netErr.Error())
}

func TestAsAPIError(t *testing.T) {
	orig := &APIError{Op: opSignup, Kind: KindValidation}
	assert.Same(t, orig, AsAPIError(opSignup, fmt.Errorf("x: %w", orig)))

	other := AsAPIError(opLogin, errors.New("boom"))
	assert.Equal(t, KindUnknown, other.Kind)
	assert.Equal(t, opLogin, other.Op)
}
