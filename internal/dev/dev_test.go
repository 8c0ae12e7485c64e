package dev

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startWatcher(t *testing.T, dir string) (<-chan Change, func()) {
	t.Helper()

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Debounce: 50 * time.Millisecond,
		Logger:   quietLogger(),
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	go watcher.Start(ctx)

	// Wait for the directories to be added
	deadline := time.Now().Add(time.Second)
	for !watcher.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)

	return changes, func() {
		watcher.Stop()
		cancel()
	}
}

func TestWatcher_Basic(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "card.yaml")
	if err := os.WriteFile(testFile, []byte("$tag: div\n"), 0644); err != nil {
		t.Fatal(err)
	}

	changes, stop := startWatcher(t, tmpDir)
	defer stop()

	if err := os.WriteFile(testFile, []byte("$tag: span\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeTree {
			t.Errorf("Expected tree change, got %v", change.Type)
		}
		if change.Path != testFile {
			t.Errorf("Expected path %q, got %q", testFile, change.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for change")
	}
}

func TestWatcher_Debounce(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "card.json")

	changes, stop := startWatcher(t, tmpDir)
	defer stop()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(testFile, []byte(`{"$tag": "div"}`), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for change")
	}

	select {
	case c := <-changes:
		t.Errorf("burst should be reported once, got extra change %v", c)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_NewSubdirectory(t *testing.T) {
	tmpDir := t.TempDir()

	changes, stop := startWatcher(t, tmpDir)
	defer stop()

	sub := filepath.Join(tmpDir, "cards")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	newFile := filepath.Join(sub, "site.css")
	if err := os.WriteFile(newFile, []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Path != newFile || change.Type != ChangeCSS {
			t.Errorf("got %+v, want css change for %s", change, newFile)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for change in new directory")
	}
}

func TestWatcher_Ignore(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{
		Ignore: []string{"node_modules", "*.swp", "build/out"},
	})

	tests := []struct {
		path string
		want bool
	}{
		{"/p/node_modules/x.yaml", true},
		{"/p/trees/.card.yaml.swp", true},
		{"/p/build/out/page.json", true},
		{"/p/build/page.json", false},
		{"/p/trees/card.yaml", false},
	}
	for _, tt := range tests {
		if got := watcher.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestClassifyChange(t *testing.T) {
	tests := map[string]ChangeType{
		"card.yaml": ChangeTree,
		"card.yml":  ChangeTree,
		"card.json": ChangeTree,
		"site.css":  ChangeCSS,
		"logo.png":  ChangeAsset,
	}
	for path, want := range tests {
		if got := classifyChange(path); got != want {
			t.Errorf("classifyChange(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcher_IsRunning(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{Paths: []string{"."}})

	if watcher.IsRunning() {
		t.Error("Watcher should not be running initially")
	}
}

func TestDevClientScript(t *testing.T) {
	for _, want := range []string{
		"WebSocket", ReloadPath, "location.reload", "?document=",
		"err.code", "err.line", "err.column", "err.suggestion",
	} {
		if !strings.Contains(DevClientScript, want) {
			t.Errorf("DevClientScript should contain %q", want)
		}
	}
	if !strings.HasPrefix(DevClientScript, "<script>") || !strings.HasSuffix(DevClientScript, "</script>") {
		t.Error("DevClientScript should be a single script element")
	}
	if strings.Contains(reloadJS, "</script") {
		t.Error("reload client must not close its own script element")
	}
}
