package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	retryDelay = time.Millisecond
	os.Exit(m.Run())
}

// exerciseCache runs the behaviour every backend shares.
func exerciseCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit || string(data) != "value" {
		t.Fatalf("Get(key) = %q, %v, %v", data, hit, err)
	}

	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatalf("Set(no ttl) error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without TTL missing")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get after Delete hit")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}

	if cl, ok := c.(Clearer); ok {
		if err := cl.Clear(ctx); err != nil {
			t.Fatalf("Clear error: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "forever"); hit {
			t.Error("Get after Clear hit")
		}
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always return a nil miss")
	}
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func TestFileCacheExpiryAndCorruption(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry returned")
	}
	if _, err := os.Stat(c.path("short")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}

	path := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v", hit, err)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(0, 0)
	defer c.Close()
	exerciseCache(t, c)

	ctx := context.Background()
	buf := []byte("abc")
	if err := c.Set(ctx, "k", buf, time.Minute); err != nil {
		t.Fatal(err)
	}
	buf[0] = 'z'
	if data, _, _ := c.Get(ctx, "k"); string(data) != "abc" {
		t.Errorf("stored value aliased caller buffer: %q", data)
	}
	got, _, _ := c.Get(ctx, "k")
	got[1] = 'z'
	if data, _, _ := c.Get(ctx, "k"); string(data) != "abc" {
		t.Errorf("returned value aliased the stored entry: %q", data)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("GAMEGRID_TEST_REDIS")
	if url == "" {
		t.Skip("GAMEGRID_TEST_REDIS not set")
	}
	c, err := NewRedisCache(context.Background(), url, "gamegrid-test:")
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func TestMongoCache(t *testing.T) {
	uri := os.Getenv("GAMEGRID_TEST_MONGO")
	if uri == "" {
		t.Skip("GAMEGRID_TEST_MONGO not set")
	}
	c, err := NewMongoCache(context.Background(), uri, "gamegrid_test", "cache")
	if err != nil {
		t.Fatalf("NewMongoCache error: %v", err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		spec    string
		want    string
		wantErr bool
	}{
		{"", "*cache.FileCache", false},
		{"file", "*cache.FileCache", false},
		{"memory", "*cache.MemoryCache", false},
		{"none", "cache.NullCache", false},
		{"off", "cache.NullCache", false},
		{"redis://%zz", "", true},
		{"memcached://x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			c, err := Open(ctx, tt.spec, dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer c.Close()
			if got := typeName(c); got != tt.want {
				t.Errorf("Open(%q) = %s, want %s", tt.spec, got, tt.want)
			}
		})
	}

	if _, err := Open(ctx, "file", ""); err == nil {
		t.Error("Open(file) without dir succeeded")
	}
}

func typeName(c Cache) string {
	switch c.(type) {
	case *FileCache:
		return "*cache.FileCache"
	case *MemoryCache:
		return "*cache.MemoryCache"
	case NullCache:
		return "cache.NullCache"
	default:
		return "unknown"
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}

	j1, err := HashJSON(map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	j2, _ := HashJSON(map[string]int{"a": 1})
	if j1 != j2 {
		t.Error("HashJSON should be deterministic")
	}
	if _, err := HashJSON(func() {}); err == nil {
		t.Error("HashJSON(func) should fail")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{MaxItems: 24, Trailing: "drop"})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{MaxItems: 12, Trailing: "drop"})
	lk3 := k.LayoutKey("hash123", LayoutKeyOpts{MaxItems: 24, Trailing: "mixed"})
	if lk1 == lk2 || lk1 == lk3 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(lk1, "layout:") {
		t.Errorf("LayoutKey unexpected: %s", lk1)
	}
	if lk1 != k.LayoutKey("hash123", LayoutKeyOpts{MaxItems: 24, Trailing: "drop"}) {
		t.Error("LayoutKey should be deterministic")
	}

	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(ak1, "artifact:") {
		t.Errorf("ArtifactKey unexpected: %s", ak1)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "staging:")
	plain := NewDefaultKeyer()

	opts := LayoutKeyOpts{MaxItems: 24}
	if got, want := scoped.LayoutKey("h", opts), "staging:"+plain.LayoutKey("h", opts); got != want {
		t.Errorf("LayoutKey = %s, want %s", got, want)
	}
	aopts := ArtifactKeyOpts{Format: "svg"}
	if got, want := scoped.ArtifactKey("h", aopts), "staging:"+plain.ArtifactKey("h", aopts); got != want {
		t.Errorf("ArtifactKey = %s, want %s", got, want)
	}

	nilInner := NewScopedKeyer(nil, "p:")
	if !strings.HasPrefix(nilInner.LayoutKey("h", opts), "p:layout:") {
		t.Error("nil inner keyer should fall back to DefaultKeyer")
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("wrapped error should match ErrNetwork")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()
	permanent := errors.New("permanent")

	tests := []struct {
		name      string
		fn        func(calls int) error
		wantErr   error
		wantCalls int
	}{
		{"success", func(int) error { return nil }, nil, 1},
		{"permanent", func(int) error { return permanent }, permanent, 1},
		{"retry then success", func(calls int) error {
			if calls < 2 {
				return Retryable(ErrNetwork)
			}
			return nil
		}, nil, 2},
		{"exhausted", func(int) error { return Retryable(ErrNetwork) }, ErrNetwork, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := RetryWithBackoff(ctx, func() error {
				calls++
				return tt.fn(calls)
			})
			if !errors.Is(err, tt.wantErr) && !(err == nil && tt.wantErr == nil) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
