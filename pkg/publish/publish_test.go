package publish_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/go-cmp/cmp"

	"github.com/skooma-dev/skooma/internal/config"
	"github.com/skooma-dev/skooma/internal/errors"
	"github.com/skooma-dev/skooma/pkg/publish"
	"github.com/skooma-dev/skooma/pkg/render"
)

type memoryStore struct {
	mu    sync.Mutex
	pages map[string]string
	types map[string]string
	fail  string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{pages: map[string]string{}, types: map[string]string{}}
}

func (m *memoryStore) Put(ctx context.Context, key, contentType string, size int64, r io.Reader) error {
	if key == m.fail {
		return stderrors.New("access denied")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if int64(len(data)) != size {
		return stderrors.New("size mismatch")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[key] = string(data)
	m.types[key] = contentType
	return nil
}

func writeTrees(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishDir(t *testing.T) {
	dir := writeTrees(t, map[string]string{
		"card.yaml":  "$tag: div\nclass: card\n$children: [Hello]\n",
		"index.json": `{"$tag": "main", "$children": [{"$tag": "h1", "$children": ["Home"]}]}`,
		"README.md":  "ignored",
	})
	store := newMemoryStore()

	p := publish.New(store, publish.Options{Lang: "de", Logger: quiet()})
	results, err := p.PublishDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("PublishDir: %v", err)
	}

	var keys []string
	for _, r := range results {
		keys = append(keys, r.Key)
		if r.Size != int64(len(store.pages[r.Key])) {
			t.Errorf("%s: Size = %d, stored %d bytes", r.Key, r.Size, len(store.pages[r.Key]))
		}
	}
	if diff := cmp.Diff([]string{"card.html", "index.html"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	card := store.pages["card.html"]
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="de">`,
		"<title>card</title>",
		`<div class="card">Hello</div>`,
	} {
		if !strings.Contains(card, want) {
			t.Errorf("card.html should contain %q:\n%s", want, card)
		}
	}
	if strings.Contains(card, "_skooma/reload") {
		t.Error("published pages must not include the reload script")
	}
	if store.types["card.html"] != publish.ContentType {
		t.Errorf("content type = %q", store.types["card.html"])
	}
}

func TestPublishSanitize(t *testing.T) {
	dir := writeTrees(t, map[string]string{
		"link.json": `{"$tag": "a", "href": "javascript:alert(1)", "$children": ["x"]}`,
	})
	store := newMemoryStore()

	p := publish.New(store, publish.Options{
		Render: render.RendererConfig{Sanitize: true},
		Logger: quiet(),
	})
	if _, err := p.PublishDir(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(store.pages["link.html"], "javascript:") {
		t.Errorf("sanitized page kept a script URL:\n%s", store.pages["link.html"])
	}
}

func TestPublishStopsAtFirstError(t *testing.T) {
	dir := writeTrees(t, map[string]string{
		"a.json": `{"$tag": "p"}`,
		"b.json": `{"$tag": "p", "$ns": "mathml"}`,
		"c.json": `{"$tag": "p"}`,
	})
	store := newMemoryStore()

	results, err := publish.New(store, publish.Options{Logger: quiet()}).PublishDir(context.Background(), dir)
	if !errors.HasCode(err, "E102") {
		t.Fatalf("error = %v, want E102", err)
	}
	if len(results) != 1 || results[0].Key != "a.html" {
		t.Errorf("results = %+v, want only a.html", results)
	}
	if _, ok := store.pages["c.html"]; ok {
		t.Error("pages after the failure should not be published")
	}
}

func TestPublishStoreError(t *testing.T) {
	dir := writeTrees(t, map[string]string{"a.json": `{"$tag": "p"}`})
	store := newMemoryStore()
	store.fail = "a.html"

	_, err := publish.New(store, publish.Options{Logger: quiet()}).PublishDir(context.Background(), dir)
	if !errors.HasCode(err, "E201") {
		t.Fatalf("error = %v, want E201", err)
	}
	if !strings.Contains(err.Error(), "access denied") {
		t.Errorf("error should wrap the store error: %v", err)
	}
}

func TestPublishCancelled(t *testing.T) {
	dir := writeTrees(t, map[string]string{"a.json": `{"$tag": "p"}`})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := publish.New(newMemoryStore(), publish.Options{Logger: quiet()}).PublishDir(ctx, dir)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDiskStore(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	store, err := publish.NewDiskStore(out)
	if err != nil {
		t.Fatal(err)
	}

	page := []byte("<p>hi</p>")
	if err := store.Put(context.Background(), "docs/page.html", publish.ContentType, int64(len(page)), bytes.NewReader(page)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, "docs", "page.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, page) {
		t.Errorf("stored %q, want %q", data, page)
	}

	entries, _ := os.ReadDir(filepath.Join(out, "docs"))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}

	if err := store.Put(context.Background(), "../escape.html", publish.ContentType, 0, strings.NewReader("")); err == nil {
		t.Error("keys outside the output directory should be rejected")
	}
}

type recordingClient struct {
	inputs []*s3.PutObjectInput
}

func (c *recordingClient) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	c.inputs = append(c.inputs, in)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	if _, err := publish.NewS3Store(&recordingClient{}, "", ""); !errors.HasCode(err, "E202") {
		t.Fatalf("error = %v, want E202", err)
	}

	client := &recordingClient{}
	store, err := publish.NewS3Store(client, "site", "preview/")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put(context.Background(), "card.html", publish.ContentType, 4, strings.NewReader("<p/>")); err != nil {
		t.Fatal(err)
	}

	if len(client.inputs) != 1 {
		t.Fatalf("got %d PutObject calls", len(client.inputs))
	}
	in := client.inputs[0]
	if aws.ToString(in.Bucket) != "site" || aws.ToString(in.Key) != "preview/card.html" {
		t.Errorf("bucket/key = %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != publish.ContentType || aws.ToInt64(in.ContentLength) != 4 {
		t.Errorf("content type %q length %d", aws.ToString(in.ContentType), aws.ToInt64(in.ContentLength))
	}
	if _, ok := in.Metadata["publish-time"]; !ok {
		t.Error("publish-time metadata missing")
	}
}

func TestS3ClientEndpoint(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	var mu sync.Mutex
	var method, path, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		method, path, contentType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		mu.Unlock()
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := publish.NewS3Client(config.PublishConfig{
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		PathStyle: true,
	})
	store, err := publish.NewS3Store(client, "site", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put(context.Background(), "index.html", publish.ContentType, 4, bytes.NewReader([]byte("<p/>"))); err != nil {
		t.Fatalf("Put: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if method != http.MethodPut || path != "/site/index.html" {
		t.Errorf("request = %s %s, want PUT /site/index.html", method, path)
	}
	if contentType != publish.ContentType {
		t.Errorf("Content-Type = %q", contentType)
	}
}
