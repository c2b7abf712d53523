package imagehost

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/webshoplabs/product-form-api/pkg/config"
	pkgerrors "github.com/webshoplabs/product-form-api/pkg/errors"
	"github.com/webshoplabs/product-form-api/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	client, err := NewClient(config.UploadConfig{
		Endpoint: endpoint,
		ClientID: "test-client-id",
		Timeout:  5 * time.Second,
	}, newTestLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(config.UploadConfig{Endpoint: "http://x", ClientID: "id"}, nil); err == nil {
		t.Fatal("expected error for nil logger")
	}
	if _, err := NewClient(config.UploadConfig{Endpoint: " ", ClientID: "id"}, newTestLogger()); err == nil {
		t.Fatal("expected error for empty endpoint")
	}
	if _, err := NewClient(config.UploadConfig{Endpoint: "http://x", ClientID: ""}, newTestLogger()); err == nil {
		t.Fatal("expected error for empty client id")
	}
}

func TestUploadSendsMultipartWithCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Client-ID test-client-id" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("missing image part: %v", err)
		}
		defer file.Close()
		if header.Filename != "lamp.png" {
			t.Errorf("unexpected file name %q", header.Filename)
		}
		contents, _ := io.ReadAll(file)
		if string(contents) != "image-bytes" {
			t.Errorf("unexpected file contents %q", contents)
		}
		_, _ = w.Write([]byte(`{"data":{"link":"https://i.host/abc.png"}}`))
	}))
	defer server.Close()

	hosted, err := newTestClient(t, server.URL).Upload(context.Background(), "lamp.png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hosted.URL != "https://i.host/abc.png" {
		t.Fatalf("unexpected url %q", hosted.URL)
	}
	if hosted.Source != "lamp.png" {
		t.Fatalf("expected source to keep the original file name, got %q", hosted.Source)
	}
}

func TestUploadRejectedByHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Upload(context.Background(), "lamp.png", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUploadFailed {
		t.Fatalf("expected upload failure code, got %v", err)
	}
}

func TestUploadResponseMissingLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Upload(context.Background(), "lamp.png", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUploadFailed {
		t.Fatalf("expected upload failure code, got %v", err)
	}
}

func TestUploadUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newTestClient(t, server.URL).Upload(context.Background(), "lamp.png", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUploadFailed {
		t.Fatalf("expected upload failure code, got %v", err)
	}
}
