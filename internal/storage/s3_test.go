package storage

import (
	"alcyxob/exercise-tracker/internal/config"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), config.S3Config{Region: "us-east-1"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
}

func TestS3Storage_PutObject(t *testing.T) {
	var gotMethod, gotPath, gotType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        srv.URL,
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		BucketName:      "archive",
	})
	if err != nil {
		t.Fatalf("NewS3Storage failed: %v", err)
	}

	if err := store.PutObject(context.Background(), "archives/users.json", "application/json", []byte(`[]`)); err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("Expected PUT, got %s", gotMethod)
	}
	if gotPath != "/archive/archives/users.json" {
		t.Errorf("Expected path-style key, got %s", gotPath)
	}
	if gotType != "application/json" {
		t.Errorf("Expected application/json, got %s", gotType)
	}
	if string(gotBody) != "[]" {
		t.Errorf("Expected body [], got %q", gotBody)
	}
}
