package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/syncveil/syncveil/internal/client/models"
	"github.com/syncveil/syncveil/internal/client/session"
	"github.com/syncveil/syncveil/internal/common"
	"github.com/syncveil/syncveil/internal/logging"
)

const defaultRequestTimeout = 30 * time.Second

// HTTPClient is the Client implementation over net/http. It reads the
// bearer credential from the session store on every protected call and
// writes the session back after a successful signup or login.
//
// Two underlying clients are kept: a timeout-bounded one for the short
// request/response operations, and an unbounded one for uploads, whose
// transfer time depends on file size and is limited by ctx alone.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	upload  *http.Client
	store   session.Store
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithTimeout overrides the request timeout. Uploads are exempt.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

func NewHTTPClient(baseURL string, store session.Store, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
		upload:  &http.Client{},
		store:   store,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken       string      `json:"access_token"`
	RefreshToken      string      `json:"refresh_token"`
	User              models.User `json:"user"`
	VerificationToken string      `json:"verification_token"`
}

// normalizeEmail lower-cases and trims an address before it goes on the wire.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// bearer returns the stored access token, or a fast 401 when none exists.
func (c *HTTPClient) bearer(ctx context.Context, op operation) (string, *Error) {
	token, err := c.store.AccessToken(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to read session", "op", op.name, "error", err)
		return "", &Error{Status: http.StatusInternalServerError, Message: op.generic}
	}
	if token == "" {
		return "", errNotAuthenticated()
	}
	return token, nil
}

// send issues one request over the timeout-bounded client and returns the
// status with the full body. A transport failure with no response maps to
// the operation's network error.
func (c *HTTPClient) send(ctx context.Context, op operation, req *http.Request) (int, []byte, *Error) {
	return c.sendVia(ctx, c.http, op, req)
}

func (c *HTTPClient) sendVia(ctx context.Context, httpc *http.Client, op operation, req *http.Request) (int, []byte, *Error) {
	c.log.Debug(ctx, "api request", "op", op.name, "method", req.Method, "url", req.URL.Path)

	resp, err := httpc.Do(req)
	if err != nil {
		c.log.Error(ctx, "transport failure", "op", op.name, "error", err)
		return 0, nil, op.networkError()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "failed to read response", "op", op.name, "error", err)
		return 0, nil, op.networkError()
	}

	return resp.StatusCode, body, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, op operation, path, token string) (int, []byte, *Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, op.networkError()
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	return c.send(ctx, op, req)
}

func (c *HTTPClient) postJSON(ctx context.Context, op operation, path string, payload any) (int, []byte, *Error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, op.networkError()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, nil, op.networkError()
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(ctx, op, req)
}

// persistSession stores the session delivered by an auth response. Failures
// surface as the operation's uniform error shape.
func (c *HTTPClient) persistSession(ctx context.Context, op operation, resp authResponse) *Error {
	sess := models.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.User.ID,
		UserEmail:    resp.User.Email,
	}
	if err := c.store.Persist(ctx, sess); err != nil {
		c.log.Error(ctx, "failed to persist session", "op", op.name, "error", err)
		return &Error{Status: http.StatusInternalServerError, Message: op.generic}
	}
	return nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, password string) (*SignupResult, error) {
	payload := credentials{Email: normalizeEmail(email), Password: password}

	status, body, apiErr := c.postJSON(ctx, opSignup, "/auth/signup", payload)
	if apiErr != nil {
		return nil, apiErr
	}
	if !success(status) {
		return nil, opSignup.failureError(status, body)
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, opSignup.invalidBodyError(body)
	}

	if resp.AccessToken != "" {
		if apiErr := c.persistSession(ctx, opSignup, resp); apiErr != nil {
			return nil, apiErr
		}
	}

	return &SignupResult{
		User:                 resp.User,
		RequiresVerification: !resp.User.EmailVerified,
		VerificationToken:    resp.VerificationToken,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := credentials{Email: normalizeEmail(email), Password: password}

	status, body, apiErr := c.postJSON(ctx, opLogin, "/auth/login", payload)
	if apiErr != nil {
		return nil, apiErr
	}
	if !success(status) {
		return nil, opLogin.failureError(status, body)
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, opLogin.invalidBodyError(body)
	}

	if resp.AccessToken != "" {
		if apiErr := c.persistSession(ctx, opLogin, resp); apiErr != nil {
			return nil, apiErr
		}
	}

	return &LoginResult{User: resp.User, AccessToken: resp.AccessToken}, nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	path := "/auth/verify?token=" + url.QueryEscape(token)

	status, body, apiErr := c.getJSON(ctx, opVerify, path, "")
	if apiErr != nil {
		return nil, apiErr
	}
	if !success(status) {
		return nil, opVerify.failureError(status, body)
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, opVerify.invalidBodyError(body)
	}
	return &user, nil
}

// Logout clears the local session unconditionally. The backend contract has
// no revoke endpoint, and logout must never be blockable by backend
// unavailability; with no stored token this is a no-op.
func (c *HTTPClient) Logout(ctx context.Context) error {
	token, err := c.store.AccessToken(ctx)
	if err != nil {
		// Reading failed; still attempt the clear below.
		c.log.Warn(ctx, "failed to read session on logout", "error", err)
		token = ""
	}

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear session", "error", err)
		return &Error{Status: http.StatusInternalServerError, Message: "Logout failed"}
	}

	if token != "" {
		c.log.Info(ctx, "logged out")
	}
	return nil
}

func (c *HTTPClient) DashboardData(ctx context.Context) (*models.DashboardStats, error) {
	token, apiErr := c.bearer(ctx, opDashboard)
	if apiErr != nil {
		return nil, apiErr
	}

	status, body, apiErr := c.getJSON(ctx, opDashboard, "/api/dashboard", token)
	if apiErr != nil {
		return nil, apiErr
	}
	if !success(status) {
		return nil, opDashboard.failureError(status, body)
	}

	var stats models.DashboardStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, opDashboard.invalidBodyError(body)
	}
	return &stats, nil
}

func (c *HTTPClient) UploadFile(ctx context.Context, name string, content io.Reader, onProgress func(float64)) (*models.VaultFile, error) {
	token, apiErr := c.bearer(ctx, opUpload)
	if apiErr != nil {
		return nil, apiErr
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, opUpload.networkError()
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, opUpload.networkError()
	}
	if err := mw.Close(); err != nil {
		return nil, opUpload.networkError()
	}

	size := int64(buf.Len())
	body := &progressReader{r: &buf, total: size, onProgress: onProgress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/vault/upload", body)
	if err != nil {
		return nil, opUpload.networkError()
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	req.ContentLength = size

	// The transfer runs as long as the file is large; only ctx bounds it.
	status, respBody, apiErr := c.sendVia(ctx, c.upload, opUpload, req)
	if apiErr != nil {
		return nil, apiErr
	}
	if !success(status) {
		return nil, opUpload.failureError(status, respBody)
	}

	var file models.VaultFile
	if err := json.Unmarshal(respBody, &file); err != nil {
		return nil, opUpload.invalidBodyError(respBody)
	}
	return &file, nil
}

func (c *HTTPClient) VaultFiles(ctx context.Context) ([]models.VaultFile, error) {
	token, apiErr := c.bearer(ctx, opVaultFiles)
	if apiErr != nil {
		return nil, apiErr
	}

	status, body, apiErr := c.getJSON(ctx, opVaultFiles, "/api/vault/files", token)
	if apiErr != nil {
		return nil, apiErr
	}
	if !success(status) {
		return nil, opVaultFiles.failureError(status, body)
	}

	var files []models.VaultFile
	if err := json.Unmarshal(body, &files); err != nil {
		return nil, opVaultFiles.invalidBodyError(body)
	}
	return files, nil
}

func (c *HTTPClient) BreachData(ctx context.Context) ([]models.Breach, error) {
	token, apiErr := c.bearer(ctx, opBreaches)
	if apiErr != nil {
		return nil, apiErr
	}

	status, body, apiErr := c.getJSON(ctx, opBreaches, "/api/monitor/breaches", token)
	if apiErr != nil {
		return nil, apiErr
	}
	if !success(status) {
		return nil, opBreaches.failureError(status, body)
	}

	var breaches []models.Breach
	if err := json.Unmarshal(body, &breaches); err != nil {
		return nil, opBreaches.invalidBodyError(body)
	}
	return breaches, nil
}
