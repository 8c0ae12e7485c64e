package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skooma-dev/skooma/pkg/dom"
	"github.com/skooma-dev/skooma/pkg/render"
	"github.com/skooma-dev/skooma/pkg/tree"
)

type renderOptions struct {
	output   string
	format   string
	page     bool
	title    string
	lang     string
	pretty   bool
	sanitize bool
}

func renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a tree document to HTML",
		Long: `Render a YAML or JSON tree document to HTML.

Use - as the file to read from standard input; --format then selects
the document format.

Examples:
  skooma render trees/card.yaml
  skooma render trees/card.yaml --page --title=Card -o card.html
  cat card.json | skooma render - --format=json --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.InOrStdin(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Document format for stdin (yaml, json)")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the element in a full HTML page")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title (default: file name)")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "Page language")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "Sanitize markup with a user content policy")

	return cmd
}

func runRender(stdin io.Reader, stdout io.Writer, file string, opts renderOptions) error {
	decoder := tree.NewDecoder(dom.NewDocument())

	var (
		el  dom.Element
		err error
	)
	if file == "-" {
		format, ok := tree.FormatOf("stdin." + opts.format)
		if !ok {
			return fmt.Errorf("unknown format %q", opts.format)
		}
		el, err = decoder.Decode(stdin, format)
	} else {
		el, err = decoder.DecodeFile(file)
	}
	if err != nil {
		return err
	}

	w := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty:   opts.pretty,
		Sanitize: opts.sanitize,
	})

	if !opts.page {
		if err := renderer.RenderToWriter(w, el); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	title := opts.title
	if title == "" && file != "-" {
		title = tree.Name(file)
	}
	return renderer.RenderPage(w, render.PageData{
		Title: title,
		Lang:  opts.lang,
		Body:  el,
	})
}
