// Package publish renders tree documents to static HTML pages and stores
// them in a bucket or a local directory.
//
// Each tree file becomes one page named after the file: trees/card.yaml is
// stored as card.html under the configured prefix.
//
// # Usage
//
//	client := publish.NewS3Client(cfg.Publish)
//	store, err := publish.NewS3Store(client, cfg.Publish.Bucket, cfg.Publish.Prefix)
//	if err != nil {
//	    return err
//	}
//
//	p := publish.New(store, publish.Options{Render: render.RendererConfig{Sanitize: true}})
//	results, err := p.PublishDir(ctx, cfg.TreesPath())
//
// DiskStore writes the same pages to a directory, which is useful to check
// a site before uploading it.
package publish
