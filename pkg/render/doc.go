// Package render serialises built DOM trees into HTML pages.
//
// # Basic Usage
//
// To render an element to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(el)
//
// Shadow roots are written as declarative shadow DOM and template contents
// inside their template element, the same way dom.Render writes them.
//
// # Full Page Rendering
//
// To render a complete HTML document:
//
//	page := render.PageData{
//	    Body:        el,
//	    Title:       "My Page",
//	    StyleSheets: []string{"/site.css"},
//	}
//	err := renderer.RenderPage(w, page)
//
// # Streaming
//
// StreamingRenderer flushes the head before the body is written:
//
//	sr := render.NewStreamingRenderer(w, config)
//	err := sr.RenderPage(page)
//
// # Sanitising
//
// With RendererConfig.Sanitize set, body markup passes through bluemonday's
// UGC policy. Event attributes, scripts and inline styles are removed.
// Page chrome (head, scripts, reload client) is not sanitised.
package render
