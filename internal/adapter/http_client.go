package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Schmolo/nhplus-umsetzung/models"
)

// HTTPClientConfig configures the REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and configures
// the underlying client with the resolved base URL and request timeout.
func NewHTTPServerAdapter(cfg HTTPClientConfig) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request returns a resty request carrying the bearer token if one is set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (LoginResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/login")
	if err != nil {
		return LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return LoginResult{}, err
	}

	var result LoginResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return LoginResult{}, fmt.Errorf("login decode response: %w", err)
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (h *httpServerAdapter) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return getJSON[[]models.Patient](h, ctx, "/api/patients")
}

func (h *httpServerAdapter) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	return postJSON[models.Patient](h, ctx, "/api/patients", patient)
}

func (h *httpServerAdapter) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	return getJSON[models.Patient](h, ctx, fmt.Sprintf("/api/patients/%d", id))
}

func (h *httpServerAdapter) UpdatePatient(ctx context.Context, patient models.Patient) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patient).
		Put(fmt.Sprintf("/api/patients/%d", patient.PatientID))
	if err != nil {
		return fmt.Errorf("update patient request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListTreatmentsOfPatient(ctx context.Context, patientID int64) ([]models.Treatment, error) {
	return getJSON[[]models.Treatment](h, ctx, fmt.Sprintf("/api/patients/%d/treatments", patientID))
}

func (h *httpServerAdapter) ExportPatientsCSV(ctx context.Context) ([]byte, error) {
	resp, err := h.request(ctx).Get("/api/patients/export")
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (h *httpServerAdapter) ListCaregivers(ctx context.Context) ([]models.Caregiver, error) {
	return getJSON[[]models.Caregiver](h, ctx, "/api/caregivers")
}

func (h *httpServerAdapter) RegisterCaregiver(ctx context.Context, caregiver models.Caregiver, password string) (models.Caregiver, error) {
	body := struct {
		models.Caregiver
		Password string `json:"password"`
	}{Caregiver: caregiver, Password: password}

	return postJSON[models.Caregiver](h, ctx, "/api/caregivers", body)
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, caregiverID int64, newPassword string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"new_password": newPassword}).
		Post(fmt.Sprintf("/api/caregivers/%d/password", caregiverID))
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListTreatments(ctx context.Context) ([]models.Treatment, error) {
	return getJSON[[]models.Treatment](h, ctx, "/api/treatments")
}

func (h *httpServerAdapter) CreateTreatment(ctx context.Context, treatment models.Treatment) (models.Treatment, error) {
	return postJSON[models.Treatment](h, ctx, "/api/treatments", treatment)
}

func (h *httpServerAdapter) GetTreatment(ctx context.Context, id int64) (models.Treatment, error) {
	return getJSON[models.Treatment](h, ctx, fmt.Sprintf("/api/treatments/%d", id))
}

func (h *httpServerAdapter) UpdateTreatment(ctx context.Context, treatment models.Treatment) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(treatment).
		Put(fmt.Sprintf("/api/treatments/%d", treatment.TreatmentID))
	if err != nil {
		return fmt.Errorf("update treatment request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) LockRecord(ctx context.Context, kind string, id int64) error {
	resp, err := h.request(ctx).Post(fmt.Sprintf("/api/%ss/%d/lock", kind, id))
	if err != nil {
		return fmt.Errorf("lock request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteRecord(ctx context.Context, kind string, id int64) error {
	resp, err := h.request(ctx).Delete(fmt.Sprintf("/api/%ss/%d", kind, id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return mapHTTPError(resp)
}

// getJSON performs an authenticated GET and decodes the JSON response body.
func getJSON[T any](h *httpServerAdapter, ctx context.Context, path string) (T, error) {
	var result T

	resp, err := h.request(ctx).Get(path)
	if err != nil {
		return result, fmt.Errorf("GET %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("GET %s decode response: %w", path, err)
	}
	return result, nil
}

// postJSON performs an authenticated POST with a JSON body and decodes the
// JSON response body.
func postJSON[T any](h *httpServerAdapter, ctx context.Context, path string, body any) (T, error) {
	var result T

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return result, fmt.Errorf("POST %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("POST %s decode response: %w", path, err)
	}
	return result, nil
}
