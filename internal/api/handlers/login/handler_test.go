package login

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	authenticateSupplier "github.com/dmcwh/WRS-ReservationService/internal/usecase/authenticate_supplier"
)

type fakeAuthUseCase struct {
	resp *authenticateSupplier.Response
	err  error
}

func (u *fakeAuthUseCase) Execute(ctx context.Context, req *authenticateSupplier.Request) (*authenticateSupplier.Response, error) {
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type fakeSessionService struct {
	created *domain.Session
}

func (s *fakeSessionService) Create(supplierID, primaryEmail string, ccEmails []string) *domain.Session {
	s.created = &domain.Session{
		Token:        "tok-1",
		SupplierID:   supplierID,
		PrimaryEmail: primaryEmail,
		CCEmails:     ccEmails,
		ExpiresAt:    time.Date(2026, time.March, 2, 11, 0, 0, 0, time.UTC),
	}
	return s.created
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doLogin(t *testing.T, useCase *fakeAuthUseCase, body string) (*httptest.ResponseRecorder, *fakeSessionService) {
	sessions := &fakeSessionService{}
	handler := NewHandler(useCase, sessions, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	return rec, sessions
}

func TestHandle_Success(t *testing.T) {
	useCase := &fakeAuthUseCase{resp: &authenticateSupplier.Response{
		SupplierID:   "prov-a",
		PrimaryEmail: "a@example.com",
		CCEmails:     []string{"cc@example.com"},
	}}

	rec, sessions := doLogin(t, useCase, `{"supplier": "prov-a", "secret": "secreto1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sessions.created)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, "prov-a", resp.SupplierID)
	assert.Equal(t, "a@example.com", resp.PrimaryEmail)
	assert.Equal(t, "2026-03-02T11:00:00Z", resp.ExpiresAt)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec, sessions := doLogin(t, &fakeAuthUseCase{}, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, sessions.created)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing credentials", err: authenticateSupplier.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "supplier not found", err: authenticateSupplier.ErrSupplierNotFound, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", err: authenticateSupplier.ErrWrongSecret, wantStatus: http.StatusUnauthorized},
		{name: "identity store down", err: authenticateSupplier.ErrRemoteUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, sessions := doLogin(t, &fakeAuthUseCase{err: tt.err}, `{"supplier": "x", "secret": "y"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Nil(t, sessions.created, "no session may be issued on a failed login")
		})
	}
}
