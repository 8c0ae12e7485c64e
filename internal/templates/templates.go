package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/skooma-dev/skooma/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// Description is a short project description.
	Description string

	// Lang is the page language written to skooma.json.
	Lang string

	// Bucket is the publish bucket written to skooma.json. Optional.
	Bucket string
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"site":    siteTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E145").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: minimal, site")
	}
	return tmpl, nil
}

// List returns all available template names in order.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths returns the template's file paths in order.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create generates a project from the template. It refuses to overwrite an
// existing skooma.json.
func (t *Template) Create(dir string, cfg Config) error {
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if _, err := os.Stat(filepath.Join(dir, "skooma.json")); err == nil {
		return errors.New("E146").WithDetail(dir)
	}

	for _, relPath := range t.Paths() {
		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return err
		}
	}

	return nil
}

const configFile = `{
  "dev": {
    "port": 3000,
    "dir": "trees",
    "hotReload": true
  },
  "render": {
    "lang": "{{.Lang}}"
  }{{if .Bucket}},
  "publish": {
    "bucket": "{{.Bucket}}"
  }{{end}}
}
`

// minimalTemplate returns the minimal template.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A config file and one tree document",
		Files: map[string]string{
			"skooma.json": configFile,
			"trees/index.yaml": `$tag: main
$children:
  - $tag: h1
    $children: [{{printf "%q" .ProjectName}}]
{{- if .Description}}
  - $tag: p
    $children: [{{printf "%q" .Description}}]
{{- end}}
`,
		},
	}
}

// siteTemplate returns a starter with several documents.
func siteTemplate() *Template {
	return &Template{
		Name:        "site",
		Description: "Pages showing classes, styles, SVG and shadow roots",
		Files: map[string]string{
			"skooma.json": configFile,
			"README.md": `# {{.ProjectName}}
{{if .Description}}
{{.Description}}
{{end}}
Tree documents live in trees/. Preview them with live reload:

    skooma serve

Render one document:

    skooma render trees/index.yaml --page

Publish every document as name.html:

    skooma publish --bucket=<bucket>
`,
			"trees/index.yaml": `$tag: main
style:
  maxWidth: 40rem
  margin: 0 auto
  fontFamily: system-ui, sans-serif
$children:
  - $tag: h1
    $children: [{{printf "%q" .ProjectName}}]
  - $tag: ul
    $children:
      - $tag: li
        $children:
          - $tag: a
            href: /view/card
            $children: [Card]
      - $tag: li
        $children:
          - $tag: a
            href: /view/icon
            $children: [Icon]
`,
			"trees/card.json": `{
  "$tag": "userCard",
  "class": ["card", "elevated"],
  "data-user": {"id": 1, "name": "Ada"},
  "shadowRoot": [
    {"$tag": "style", "$children": [":host { display: block; padding: 1rem; }"]},
    {"$tag": "slot"}
  ],
  "$children": [
    {"$tag": "strong", "$children": ["Ada Lovelace"]},
    " wrote the first program in ",
    1843
  ]
}
`,
			"trees/icon.yaml": `$tag: svg
$ns: svg
viewBox: 0 0 24 24
width: 48
height: 48
$children:
  - $tag: circle
    $ns: svg
    cx: 12
    cy: 12
    r: 10
    fill: none
    stroke: currentColor
`,
		},
	}
}
