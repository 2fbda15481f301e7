package local

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	return s
}

func TestSaveAndOpen(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	info, err := s.Save(ctx, "clip.wav", strings.NewReader("audio-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if info.Size != int64(len("audio-bytes")) {
		t.Errorf("size = %d", info.Size)
	}
	if !strings.HasSuffix(info.Key, "_clip.wav") {
		t.Errorf("key = %q, want uuid prefix with original name suffix", info.Key)
	}
	if strings.ContainsAny(info.Key, `/\`) {
		t.Errorf("key %q contains path separators", info.Key)
	}

	r, err := s.Open(ctx, info.Key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "audio-bytes" {
		t.Errorf("data = %q", data)
	}
}

func TestSaveUniqueKeys(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	a, err := s.Save(ctx, "same.wav", strings.NewReader("a"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Save(ctx, "same.wav", strings.NewReader("b"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Key == b.Key {
		t.Errorf("duplicate uploads got identical key %q", a.Key)
	}
}

func TestSaveSanitizesHostileName(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	info, err := s.Save(ctx, "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(info.Key, "..") || strings.ContainsAny(info.Key, `/\`) {
		t.Errorf("key %q not sanitized", info.Key)
	}
	if !strings.HasPrefix(info.Path, s.BasePath()) {
		t.Errorf("path %q escapes base %q", info.Path, s.BasePath())
	}
}

func TestDeleteAndExists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	info, err := s.Save(ctx, "clip.wav", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}

	ok, err := s.Exists(ctx, info.Key)
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}

	if err := s.Delete(ctx, info.Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ok, err = s.Exists(ctx, info.Key)
	if err != nil || ok {
		t.Fatalf("Exists after delete = %v, %v", ok, err)
	}

	// deleting again is not an error
	if err := s.Delete(ctx, info.Key); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestOpenRejectsTraversalKey(t *testing.T) {
	s := newTestStorage(t)
	for _, key := range []string{"../secret", "a/b", "", `..\x`} {
		if _, err := s.Open(context.Background(), key); err == nil {
			t.Errorf("Open(%q) succeeded, want error", key)
		}
	}
}

func TestListOldestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.Save(ctx, "a.wav", strings.NewReader("1"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Save(ctx, "b.wav", strings.NewReader("2"))
	if err != nil {
		t.Fatal(err)
	}
	// force a clear ordering regardless of filesystem timestamp resolution
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(first.Path, past, past); err != nil {
		t.Fatal(err)
	}

	files, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len = %d", len(files))
	}
	if files[0].Key != first.Key || files[1].Key != second.Key {
		t.Errorf("order = [%q, %q]", files[0].Key, files[1].Key)
	}
}
