package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-profile-keeper/internal/config"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/utils"
	"github.com/MKhiriev/go-profile-keeper/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetLogger(restyLogger{log: logger})

	return &httpServerAdapter{client: client, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Signup implements [ServerAdapter]. It POSTs req as JSON to /auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) error {
	_, err := h.do(ctx, opSignup, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/auth/signup")
	})
	return err
}

// Login implements [ServerAdapter]. It POSTs creds form-encoded to
// /auth/login and decodes the access token from the JSON response.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	resp, err := h.do(ctx, opLogin, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetFormData(creds.FormData()).
			Post("/auth/login")
	})
	if err != nil {
		return models.AccessToken{}, err
	}

	var token models.AccessToken
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.AccessToken{}, &APIError{Op: opLogin, Status: resp.StatusCode(), Kind: KindUnknown, Err: ErrMissingAccessToken}
	}
	token.AccessToken = strings.TrimSpace(token.AccessToken)
	if token.AccessToken == "" {
		return models.AccessToken{}, &APIError{Op: opLogin, Status: resp.StatusCode(), Kind: KindUnknown, Err: ErrMissingAccessToken}
	}

	return token, nil
}

// FetchProfile implements [ServerAdapter]. It GETs /profile/me with the
// bearer token.
func (h *httpServerAdapter) FetchProfile(ctx context.Context, token string) (models.Profile, error) {
	resp, err := h.do(ctx, opFetchProfile, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetAuthToken(token).
			Get("/profile/me")
	})
	if err != nil {
		return models.Profile{}, err
	}

	return decodeProfile(opFetchProfile, resp)
}

// UpdateProfile implements [ServerAdapter]. It PUTs update as JSON to
// /profile/me with the bearer token and returns the server's copy.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (models.Profile, error) {
	resp, err := h.do(ctx, opUpdateProfile, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetAuthToken(token).
			SetHeader("Content-Type", "application/json").
			SetBody(update).
			Put("/profile/me")
	})
	if err != nil {
		return models.Profile{}, err
	}

	return decodeProfile(opUpdateProfile, resp)
}

// do executes a single request built by send and maps its outcome. A nil
// error means a 2xx response was received.
func (h *httpServerAdapter) do(ctx context.Context, op string, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	requestID := h.ids.Generate()
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(requestIDHeader, requestID)

	resp, err := send(req)
	if err != nil {
		h.logger.Warn().Err(err).
			Str("op", op).
			Str("request_id", requestID).
			Msg("request failed without response")
		return resp, mapTransportError(op, err)
	}

	h.logger.Debug().
		Str("op", op).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Str("request_id", requestID).
		Msg("request completed")

	if err = mapHTTPError(op, resp); err != nil {
		h.logger.Error().Err(err).
			Str("op", op).
			Str("request_id", requestID).
			Msg("request returned error status")
		return resp, err
	}

	return resp, nil
}

func decodeProfile(op string, resp *resty.Response) (models.Profile, error) {
	var profile models.Profile
	if err := json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.Profile{}, &APIError{Op: op, Status: resp.StatusCode(), Kind: KindUnknown, Err: fmt.Errorf("decode profile: %w", err)}
	}
	return profile, nil
}
