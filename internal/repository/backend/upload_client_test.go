package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/e"
)

func TestUploadClient_SingleFieldName(t *testing.T) {
	var gotField, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}
		for field := range r.MultipartForm.File {
			gotField = field
		}
		w.Write([]byte(`{"success": true, "data": {"storageId": "s1", "url": "https://cdn/1.jpg"}}`))
	})

	file := usecase.UploadFile{Data: []byte("fake"), MimeType: "image/jpeg", Size: 4, Name: "photo.jpg"}
	ref, err := NewUploadClient(client).UploadSingle(context.Background(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/upload/single" {
		t.Errorf("expected /upload/single, got %q", gotPath)
	}
	if gotField != "image" {
		t.Errorf("expected multipart field %q, got %q", "image", gotField)
	}
	if ref.StorageID != "s1" || ref.URL != "https://cdn/1.jpg" {
		t.Errorf("unexpected descriptor: %+v", ref)
	}
}

func TestUploadClient_MultipleRepeatsField(t *testing.T) {
	var gotCount int
	var gotContents []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}
		headers := r.MultipartForm.File["images"]
		gotCount = len(headers)
		for _, h := range headers {
			f, err := h.Open()
			if err != nil {
				t.Fatalf("open part: %v", err)
			}
			data, _ := io.ReadAll(f)
			f.Close()
			gotContents = append(gotContents, string(data))
		}
		w.Write([]byte(`{"success": true, "data": [
			{"storageId": "s1", "url": "u1"},
			{"storageId": "s2", "url": "u2"}
		]}`))
	})

	files := []usecase.UploadFile{
		{Data: []byte("one"), MimeType: "image/png", Size: 3, Name: "a.png"},
		{Data: []byte("two"), MimeType: "image/png", Size: 3, Name: "b.png"},
	}
	refs, err := NewUploadClient(client).UploadMultiple(context.Background(), files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotCount != 2 {
		t.Fatalf("expected 2 parts under field images, got %d", gotCount)
	}
	if gotContents[0] != "one" || gotContents[1] != "two" {
		t.Errorf("file bytes not forwarded in order: %v", gotContents)
	}
	if len(refs) != 2 || refs[0].StorageID != "s1" || refs[1].StorageID != "s2" {
		t.Errorf("descriptor order must follow response order: %+v", refs)
	}
}

func TestUploadClient_BackendReportsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "Format non supporté"}`))
	})

	file := usecase.UploadFile{Data: []byte("x"), MimeType: "image/gif", Size: 1, Name: "x.gif"}
	_, err := NewUploadClient(client).UploadSingle(context.Background(), file)

	var reqErr *e.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T: %v", err, err)
	}
	if reqErr.Message != "Format non supporté" {
		t.Errorf("expected backend message, got %q", reqErr.Message)
	}
}
