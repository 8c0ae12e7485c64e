package skooma

import "github.com/skooma-dev/skooma/pkg/dom"

// Structure

func (s SVG) Svg(args ...any) dom.Element    { return s.El("svg", args...) }
func (s SVG) G(args ...any) dom.Element      { return s.El("g", args...) }
func (s SVG) Defs(args ...any) dom.Element   { return s.El("defs", args...) }
func (s SVG) Symbol(args ...any) dom.Element { return s.El("symbol", args...) }
func (s SVG) Use(args ...any) dom.Element    { return s.El("use", args...) }
func (s SVG) Title(args ...any) dom.Element  { return s.El("title", args...) }
func (s SVG) Desc(args ...any) dom.Element   { return s.El("desc", args...) }

// Shapes

func (s SVG) Path(args ...any) dom.Element     { return s.El("path", args...) }
func (s SVG) Circle(args ...any) dom.Element   { return s.El("circle", args...) }
func (s SVG) Rect(args ...any) dom.Element     { return s.El("rect", args...) }
func (s SVG) Line(args ...any) dom.Element     { return s.El("line", args...) }
func (s SVG) Polyline(args ...any) dom.Element { return s.El("polyline", args...) }
func (s SVG) Polygon(args ...any) dom.Element  { return s.El("polygon", args...) }
func (s SVG) Ellipse(args ...any) dom.Element  { return s.El("ellipse", args...) }

// Text

func (s SVG) Text(args ...any) dom.Element     { return s.El("text", args...) }
func (s SVG) Tspan(args ...any) dom.Element    { return s.El("tspan", args...) }
func (s SVG) TextPath(args ...any) dom.Element { return s.El("textPath", args...) }

// Paint servers and effects

func (s SVG) LinearGradient(args ...any) dom.Element { return s.El("linearGradient", args...) }
func (s SVG) RadialGradient(args ...any) dom.Element { return s.El("radialGradient", args...) }
func (s SVG) Stop(args ...any) dom.Element           { return s.El("stop", args...) }
func (s SVG) Pattern(args ...any) dom.Element        { return s.El("pattern", args...) }
func (s SVG) ClipPath(args ...any) dom.Element       { return s.El("clipPath", args...) }
func (s SVG) Mask(args ...any) dom.Element           { return s.El("mask", args...) }
func (s SVG) Filter(args ...any) dom.Element         { return s.El("filter", args...) }
func (s SVG) Marker(args ...any) dom.Element         { return s.El("marker", args...) }

// Embedded content

func (s SVG) Image(args ...any) dom.Element         { return s.El("image", args...) }
func (s SVG) ForeignObject(args ...any) dom.Element { return s.El("foreignObject", args...) }
