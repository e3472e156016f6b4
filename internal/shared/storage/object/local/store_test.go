package local

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"resume-scoring/internal/shared/storage/object"
)

func TestStorePutAndOpen(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key, err := object.SourceKey("guest:abc", "asset-1", "my cv.pdf")
	if err != nil {
		t.Fatalf("SourceKey: %v", err)
	}
	n, err := store.Put(ctx, key, "application/pdf", strings.NewReader("%PDF-1.4 body"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if n != int64(len("%PDF-1.4 body")) {
		t.Fatalf("unexpected size %d", n)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "%PDF-1.4 body" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestStoreRejectsEscapingKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"../outside", "/etc/passwd", ""} {
		if _, err := store.Put(ctx, key, "", strings.NewReader("x")); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}

func TestStoreOpenMissing(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Open(context.Background(), "sources/none/file.pdf")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
