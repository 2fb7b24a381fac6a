package imagehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientUpload(t *testing.T) {
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = map[string]string{
			"file":   r.PostFormValue("file"),
			"folder": r.PostFormValue("folder"),
		}
		if r.PostFormValue("public_id") == "" {
			t.Error("expected a public_id")
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key-1" {
			t.Errorf("authorization = %q", got)
		}
		w.Write([]byte(`{"secure_url":"https://img.example/p/1.jpg"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{UploadURL: srv.URL, APIKey: "key-1", Folder: "SkiShop/ManualUpload"})
	url, err := client.Upload(context.Background(), "https://api.telegram.org/file/botX/photo.jpg")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://img.example/p/1.jpg" {
		t.Fatalf("url = %q", url)
	}
	if gotForm["file"] != "https://api.telegram.org/file/botX/photo.jpg" {
		t.Fatalf("file = %q", gotForm["file"])
	}
	if gotForm["folder"] != "SkiShop/ManualUpload" {
		t.Fatalf("folder = %q", gotForm["folder"])
	}
}

func TestClientUploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid source"}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{UploadURL: srv.URL})
	if _, err := client.Upload(context.Background(), "https://example.com/x.jpg"); err == nil {
		t.Fatal("expected error for rejected upload")
	}
}

func TestClientUploadMissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(Config{UploadURL: srv.URL})
	if _, err := client.Upload(context.Background(), "https://example.com/x.jpg"); err == nil {
		t.Fatal("expected error for missing secure_url")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Fatal("expected error for empty upload_url")
	}
	if err := (Config{UploadURL: "https://host/upload"}).Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
