package responses

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/webshoplabs/product-form-api/pkg/errors"
	"github.com/webshoplabs/product-form-api/pkg/logger"
	"github.com/webshoplabs/product-form-api/pkg/types"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.APIError {
	t.Helper()
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return envelope.Error
}

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"id": "42"})

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}
	var envelope types.SuccessEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok || data["id"] != "42" {
		t.Fatalf("unexpected data %+v", envelope.Data)
	}
}

func TestWriteHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteHTML(rec, "<div>form</div>")

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
	if rec.Body.String() != "<div>form</div>" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestWriteErrorMapsCodeToStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "upload failure",
			err:    pkgerrors.New(pkgerrors.CodeUploadFailed, "host rejected upload"),
			status: http.StatusBadGateway,
			code:   "UPLOAD_FAILED",
		},
		{
			name:   "submit failure",
			err:    pkgerrors.New(pkgerrors.CodeSubmitFailed, "catalog rejected save"),
			status: http.StatusBadGateway,
			code:   "SUBMIT_FAILED",
		},
		{
			name:   "untyped error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   "INTERNAL_ERROR",
		},
		{
			name:   "nil error",
			err:    nil,
			status: http.StatusInternalServerError,
			code:   "INTERNAL_ERROR",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), newTestLogger(), rec, tc.err)

			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rec.Code)
			}
			if apiErr := decodeError(t, rec); apiErr.Code != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, apiErr.Code)
			}
		})
	}
}

func TestWriteErrorHidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), newTestLogger(), rec, pkgerrors.New(pkgerrors.CodeSubmitFailed, "db password wrong"))

	apiErr := decodeError(t, rec)
	if apiErr.Message != "product save failed" {
		t.Fatalf("internal message leaked: %q", apiErr.Message)
	}
}

func TestWriteErrorSurfacesValidationMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "title is required").WithDetails(map[string]string{"title": "required"})
	WriteError(context.Background(), newTestLogger(), rec, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Message != "title is required" {
		t.Fatalf("expected validation message surfaced, got %q", apiErr.Message)
	}
	details, ok := apiErr.Details.(map[string]any)
	if !ok || details["title"] != "required" {
		t.Fatalf("expected details surfaced, got %+v", apiErr.Details)
	}
}

func TestWriteErrorSurvivesNilLogger(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeNotFound, "no such product"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}
