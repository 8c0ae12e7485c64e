package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skooma-dev/skooma/internal/config"
	"github.com/skooma-dev/skooma/pkg/publish"
	"github.com/skooma-dev/skooma/pkg/render"
)

type publishOptions struct {
	bucket   string
	prefix   string
	region   string
	endpoint string
	outDir   string
}

func publishCmd() *cobra.Command {
	var opts publishOptions

	cmd := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Render every tree document and upload the pages",
		Long: `Render each tree document to name.html and upload it to S3.

Bucket, prefix, region and endpoint default to the publish section of
skooma.json in dir. Credentials are read from AWS_ACCESS_KEY_ID and
AWS_SECRET_ACCESS_KEY. With --out-dir the pages are written to a local
directory instead.

Examples:
  skooma publish --bucket=my-site --prefix=preview/
  skooma publish site --endpoint=http://localhost:9000
  skooma publish --out-dir=dist`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := config.LoadOrDefault(dir)
			if err != nil {
				return err
			}
			applyPublishFlags(cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runPublish(cmd, cfg, opts.outDir)
		},
	}

	cmd.Flags().StringVarP(&opts.bucket, "bucket", "b", "", "S3 bucket")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Key prefix for uploaded pages")
	cmd.Flags().StringVar(&opts.region, "region", "", "AWS region")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Write pages to a directory instead of S3")

	return cmd
}

func applyPublishFlags(cfg *config.Config, opts publishOptions) {
	if opts.bucket != "" {
		cfg.Publish.Bucket = opts.bucket
	}
	if opts.prefix != "" {
		cfg.Publish.Prefix = opts.prefix
	}
	if opts.region != "" {
		cfg.Publish.Region = opts.region
	}
	if opts.endpoint != "" {
		cfg.Publish.Endpoint = opts.endpoint
		cfg.Publish.PathStyle = true
	}
}

func runPublish(cmd *cobra.Command, cfg *config.Config, outDir string) error {
	var store publish.Store
	if outDir != "" {
		disk, err := publish.NewDiskStore(filepath.Join(outDir, filepath.FromSlash(cfg.Publish.Prefix)))
		if err != nil {
			return err
		}
		store = disk
	} else {
		s3Store, err := publish.NewS3Store(publish.NewS3Client(cfg.Publish), cfg.Publish.Bucket, cfg.Publish.Prefix)
		if err != nil {
			return err
		}
		store = s3Store
	}

	p := publish.New(store, publish.Options{
		Render: render.RendererConfig{
			Pretty:   cfg.Render.Pretty,
			Sanitize: cfg.Render.Sanitize,
		},
		Lang:        cfg.Render.Lang,
		StyleSheets: cfg.Render.StyleSheets,
		Logger:      slog.Default(),
	})

	results, err := p.PublishDir(cmd.Context(), cfg.TreesPath())
	out := cmd.OutOrStdout()
	for _, r := range results {
		success(out, "%s -> %s (%d bytes)", filepath.Base(r.Source), r.Key, r.Size)
	}
	if err != nil {
		return err
	}
	info(out, "Published %d pages", len(results))
	return nil
}
