package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skooma-dev/skooma/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		template    string
		description string
		lang        string
		bucket      string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create skooma.json and starter tree documents",
		Long: `Create a skooma project in dir (default: current directory).

Templates:
  minimal   A config file and one tree document
  site      Several documents showing classes, styles, SVG and shadow roots

Examples:
  skooma init
  skooma init docs --template=site --bucket=docs-site`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			tmpl, err := templates.Get(template)
			if err != nil {
				return err
			}

			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			err = tmpl.Create(dir, templates.Config{
				ProjectName: filepath.Base(abs),
				Description: description,
				Lang:        lang,
				Bucket:      bucket,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range tmpl.Paths() {
				success(out, "Created %s", filepath.Join(dir, filepath.FromSlash(p)))
			}
			info(out, "Run skooma serve %s to preview", dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "minimal", "Project template (minimal, site)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().StringVar(&lang, "lang", "en", "Page language")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Publish bucket")

	return cmd
}
