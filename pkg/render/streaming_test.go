package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStreamingRendererRenderPage(t *testing.T) {
	w := httptest.NewRecorder()
	sr := NewStreamingRenderer(w, RendererConfig{})

	page := PageData{
		Body:  newHTML().Div("Streamed Content"),
		Title: "Streaming Test",
	}
	if err := sr.RenderPage(page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := w.Body.String()
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Errorf("should start with DOCTYPE")
	}
	if !strings.Contains(html, "<title>Streaming Test</title>") {
		t.Errorf("should contain title")
	}
	if !strings.Contains(html, "<div>Streamed Content</div>") {
		t.Errorf("should contain body content")
	}
	if !w.Flushed {
		t.Error("recorder should have been flushed")
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	fw := &FlushableWriter{Writer: &buf}

	sr := &StreamingRenderer{
		Renderer: NewRenderer(RendererConfig{}),
		flusher:  fw,
		w:        fw,
	}

	page := PageData{
		Body:  newHTML().Div("Content"),
		Title: "Flush Test",
	}
	if err := sr.RenderPage(page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fw.FlushCount != 3 {
		t.Errorf("FlushCount = %d, want 3", fw.FlushCount)
	}
	if !strings.Contains(buf.String(), "<div>Content</div>") {
		t.Errorf("should contain content, got %q", buf.String())
	}
}
