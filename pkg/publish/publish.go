package publish

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/skooma-dev/skooma/internal/errors"
	"github.com/skooma-dev/skooma/pkg/dom"
	"github.com/skooma-dev/skooma/pkg/render"
	"github.com/skooma-dev/skooma/pkg/tree"
)

// ContentType is the content type of published pages.
const ContentType = "text/html; charset=utf-8"

// Store is the interface for page storage backends.
type Store interface {
	// Put stores size bytes read from r under key.
	Put(ctx context.Context, key, contentType string, size int64, r io.Reader) error
}

// Options configures a Publisher.
type Options struct {
	// Render configures page rendering.
	Render render.RendererConfig

	// Lang is the page language. Empty means "en".
	Lang string

	// StyleSheets are linked from every page.
	StyleSheets []string

	// Logger receives progress logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result describes one published page.
type Result struct {
	// Source is the tree file the page was built from.
	Source string

	// Key is the storage key of the page.
	Key string

	// Size is the page size in bytes.
	Size int64

	// Duration covers building, rendering and storing the page.
	Duration time.Duration
}

// Publisher renders tree files and stores the resulting pages.
type Publisher struct {
	store    Store
	options  Options
	renderer *render.Renderer
}

// New creates a Publisher that writes to store.
func New(store Store, options Options) *Publisher {
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return &Publisher{
		store:    store,
		options:  options,
		renderer: render.NewRenderer(options.Render),
	}
}

// PublishDir publishes every tree file in dir.
func (p *Publisher) PublishDir(ctx context.Context, dir string) ([]Result, error) {
	files, err := tree.Files(dir)
	if err != nil {
		return nil, err
	}
	return p.Publish(ctx, files)
}

// Publish renders and stores each file in order. It stops at the first
// failure and returns the pages stored so far.
func (p *Publisher) Publish(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := p.publishFile(ctx, file)
		if err != nil {
			return results, err
		}
		p.options.Logger.Info("published", "source", file, "key", result.Key, "bytes", result.Size)
		results = append(results, result)
	}
	return results, nil
}

func (p *Publisher) publishFile(ctx context.Context, file string) (Result, error) {
	start := time.Now()

	el, err := tree.NewDecoder(dom.NewDocument()).DecodeFile(file)
	if err != nil {
		return Result{}, err
	}

	name := tree.Name(file)
	var buf bytes.Buffer
	err = p.renderer.RenderPage(&buf, render.PageData{
		Title:       name,
		Lang:        p.options.Lang,
		StyleSheets: p.options.StyleSheets,
		Body:        el,
	})
	if err != nil {
		return Result{}, err
	}

	key := name + ".html"
	size := int64(buf.Len())
	if err := p.store.Put(ctx, key, ContentType, size, bytes.NewReader(buf.Bytes())); err != nil {
		return Result{}, errors.New("E201").WithDetail(key).Wrap(err)
	}

	return Result{
		Source:   file,
		Key:      key,
		Size:     size,
		Duration: time.Since(start),
	}, nil
}
