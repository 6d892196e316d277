package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ascent-app/ascent-sync/models"
)

// HTTPClientConfig configures the HTTP sync adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration

	// Token supplies the bearer token per request. Required.
	Token TokenProvider

	// OnUnauthorized is called once per request after a 401 so the auth
	// collaborator can refresh the token. Optional.
	OnUnauthorized UnauthorizedHandler
}

type httpSyncAdapter struct {
	client         *resty.Client
	token          TokenProvider
	onUnauthorized UnauthorizedHandler
}

func NewHTTPSyncAdapter(cfg HTTPClientConfig) SyncServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Token == nil {
		cfg.Token = func() string { return "" }
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpSyncAdapter{
		client:         cli,
		token:          cfg.Token,
		onUnauthorized: cfg.OnUnauthorized,
	}
}

func (h *httpSyncAdapter) Upload(ctx context.Context, changes []models.PendingChange) (models.UploadResponse, error) {
	req := models.UploadRequest{Changes: changes, Length: len(changes)}

	resp, err := h.doWithAuthRetry(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/sync/upload")
	})
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var result models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	return result, nil
}

func (h *httpSyncAdapter) Download(ctx context.Context, since time.Time) (models.DownloadResponse, error) {
	resp, err := h.doWithAuthRetry(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetQueryParam("since", since.UTC().Format(time.RFC3339Nano)).
			Get("/sync/download")
	})
	if err != nil {
		return models.DownloadResponse{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadResponse{}, err
	}

	var result models.DownloadResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.DownloadResponse{}, fmt.Errorf("decode download response: %w", err)
	}

	return result, nil
}

// OwnerID parses the user id from the bearer token's subject claim. The
// token is not verified here; signature verification is the server's job,
// the claim is only used for local scoping and logging.
func (h *httpSyncAdapter) OwnerID() string {
	tokenString := h.token()
	if tokenString == "" {
		return ""
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// doWithAuthRetry issues the request with the current bearer token. On 401
// it invokes the refresh callback once and repeats the request with the
// refreshed token.
func (h *httpSyncAdapter) doWithAuthRetry(ctx context.Context, do func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := do(h.authedRequest(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoNetwork, err)
	}

	if resp.StatusCode() != http.StatusUnauthorized || h.onUnauthorized == nil {
		return resp, nil
	}

	if refreshErr := h.onUnauthorized(ctx); refreshErr != nil {
		return nil, fmt.Errorf("%w: token refresh: %w", ErrUnauthorized, refreshErr)
	}

	resp, err = do(h.authedRequest(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoNetwork, err)
	}
	return resp, nil
}

func (h *httpSyncAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if body == "" {
			return ErrValidation
		}
		return fmt.Errorf("%w: %s", ErrValidation, body)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// IsTransient reports whether the error is worth retrying on a later cycle.
func IsTransient(err error) bool {
	return errors.Is(err, ErrNoNetwork)
}
