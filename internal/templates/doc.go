// Package templates provides project scaffolding templates.
//
// # Available Templates
//
//   - minimal: a config file and one tree document
//   - site: several documents showing classes, styles, SVG and shadow roots
//
// # Usage
//
//	tmpl, err := templates.Get("site")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(projectDir, templates.Config{ProjectName: "docs"}); err != nil {
//	    return err
//	}
//
// # Template Variables
//
//	{{.ProjectName}}  - Name of the project
//	{{.Description}}  - Project description
//	{{.Lang}}         - Page language
//	{{.Bucket}}       - Publish bucket
package templates
