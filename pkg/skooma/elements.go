package skooma

import "github.com/skooma-dev/skooma/pkg/dom"

// Document structure

func (h HTML) Html(args ...any) dom.Element  { return h.El("html", args...) }
func (h HTML) Head(args ...any) dom.Element  { return h.El("head", args...) }
func (h HTML) Body(args ...any) dom.Element  { return h.El("body", args...) }
func (h HTML) Title(args ...any) dom.Element { return h.El("title", args...) }
func (h HTML) Meta(args ...any) dom.Element  { return h.El("meta", args...) }
func (h HTML) Link(args ...any) dom.Element  { return h.El("link", args...) }
func (h HTML) Base(args ...any) dom.Element  { return h.El("base", args...) }

// Content sectioning

func (h HTML) Header(args ...any) dom.Element  { return h.El("header", args...) }
func (h HTML) Footer(args ...any) dom.Element  { return h.El("footer", args...) }
func (h HTML) Main(args ...any) dom.Element    { return h.El("main", args...) }
func (h HTML) Nav(args ...any) dom.Element     { return h.El("nav", args...) }
func (h HTML) Section(args ...any) dom.Element { return h.El("section", args...) }
func (h HTML) Article(args ...any) dom.Element { return h.El("article", args...) }
func (h HTML) Aside(args ...any) dom.Element   { return h.El("aside", args...) }
func (h HTML) Address(args ...any) dom.Element { return h.El("address", args...) }
func (h HTML) H1(args ...any) dom.Element      { return h.El("h1", args...) }
func (h HTML) H2(args ...any) dom.Element      { return h.El("h2", args...) }
func (h HTML) H3(args ...any) dom.Element      { return h.El("h3", args...) }
func (h HTML) H4(args ...any) dom.Element      { return h.El("h4", args...) }
func (h HTML) H5(args ...any) dom.Element      { return h.El("h5", args...) }
func (h HTML) H6(args ...any) dom.Element      { return h.El("h6", args...) }
func (h HTML) Hgroup(args ...any) dom.Element  { return h.El("hgroup", args...) }

// Text content

func (h HTML) Div(args ...any) dom.Element        { return h.El("div", args...) }
func (h HTML) P(args ...any) dom.Element          { return h.El("p", args...) }
func (h HTML) Span(args ...any) dom.Element       { return h.El("span", args...) }
func (h HTML) Pre(args ...any) dom.Element        { return h.El("pre", args...) }
func (h HTML) Blockquote(args ...any) dom.Element { return h.El("blockquote", args...) }
func (h HTML) Ul(args ...any) dom.Element         { return h.El("ul", args...) }
func (h HTML) Ol(args ...any) dom.Element         { return h.El("ol", args...) }
func (h HTML) Li(args ...any) dom.Element         { return h.El("li", args...) }
func (h HTML) Dl(args ...any) dom.Element         { return h.El("dl", args...) }
func (h HTML) Dt(args ...any) dom.Element         { return h.El("dt", args...) }
func (h HTML) Dd(args ...any) dom.Element         { return h.El("dd", args...) }
func (h HTML) Hr(args ...any) dom.Element         { return h.El("hr", args...) }
func (h HTML) Figure(args ...any) dom.Element     { return h.El("figure", args...) }
func (h HTML) Figcaption(args ...any) dom.Element { return h.El("figcaption", args...) }

// Inline text semantics

func (h HTML) A(args ...any) dom.Element      { return h.El("a", args...) }
func (h HTML) Strong(args ...any) dom.Element { return h.El("strong", args...) }
func (h HTML) Em(args ...any) dom.Element     { return h.El("em", args...) }
func (h HTML) B(args ...any) dom.Element      { return h.El("b", args...) }
func (h HTML) I(args ...any) dom.Element      { return h.El("i", args...) }
func (h HTML) U(args ...any) dom.Element      { return h.El("u", args...) }
func (h HTML) S(args ...any) dom.Element      { return h.El("s", args...) }
func (h HTML) Small(args ...any) dom.Element  { return h.El("small", args...) }
func (h HTML) Mark(args ...any) dom.Element   { return h.El("mark", args...) }
func (h HTML) Sub(args ...any) dom.Element    { return h.El("sub", args...) }
func (h HTML) Sup(args ...any) dom.Element    { return h.El("sup", args...) }
func (h HTML) Code(args ...any) dom.Element   { return h.El("code", args...) }
func (h HTML) Kbd(args ...any) dom.Element    { return h.El("kbd", args...) }
func (h HTML) Samp(args ...any) dom.Element   { return h.El("samp", args...) }
func (h HTML) Var(args ...any) dom.Element    { return h.El("var", args...) }
func (h HTML) Abbr(args ...any) dom.Element   { return h.El("abbr", args...) }
func (h HTML) Time(args ...any) dom.Element   { return h.El("time", args...) }
func (h HTML) Cite(args ...any) dom.Element   { return h.El("cite", args...) }
func (h HTML) Q(args ...any) dom.Element      { return h.El("q", args...) }
func (h HTML) Dfn(args ...any) dom.Element    { return h.El("dfn", args...) }
func (h HTML) Ruby(args ...any) dom.Element   { return h.El("ruby", args...) }
func (h HTML) Rt(args ...any) dom.Element     { return h.El("rt", args...) }
func (h HTML) Rp(args ...any) dom.Element     { return h.El("rp", args...) }
func (h HTML) Bdi(args ...any) dom.Element    { return h.El("bdi", args...) }
func (h HTML) Bdo(args ...any) dom.Element    { return h.El("bdo", args...) }
func (h HTML) Data(args ...any) dom.Element   { return h.El("data", args...) }
func (h HTML) Br(args ...any) dom.Element     { return h.El("br", args...) }
func (h HTML) Wbr(args ...any) dom.Element    { return h.El("wbr", args...) }

// Forms

func (h HTML) Form(args ...any) dom.Element     { return h.El("form", args...) }
func (h HTML) Input(args ...any) dom.Element    { return h.El("input", args...) }
func (h HTML) Textarea(args ...any) dom.Element { return h.El("textarea", args...) }
func (h HTML) Select(args ...any) dom.Element   { return h.El("select", args...) }
func (h HTML) Option(args ...any) dom.Element   { return h.El("option", args...) }
func (h HTML) Optgroup(args ...any) dom.Element { return h.El("optgroup", args...) }
func (h HTML) Button(args ...any) dom.Element   { return h.El("button", args...) }
func (h HTML) Label(args ...any) dom.Element    { return h.El("label", args...) }
func (h HTML) Fieldset(args ...any) dom.Element { return h.El("fieldset", args...) }
func (h HTML) Legend(args ...any) dom.Element   { return h.El("legend", args...) }
func (h HTML) Datalist(args ...any) dom.Element { return h.El("datalist", args...) }
func (h HTML) Output(args ...any) dom.Element   { return h.El("output", args...) }
func (h HTML) Progress(args ...any) dom.Element { return h.El("progress", args...) }
func (h HTML) Meter(args ...any) dom.Element    { return h.El("meter", args...) }

// Tables

func (h HTML) Table(args ...any) dom.Element    { return h.El("table", args...) }
func (h HTML) Thead(args ...any) dom.Element    { return h.El("thead", args...) }
func (h HTML) Tbody(args ...any) dom.Element    { return h.El("tbody", args...) }
func (h HTML) Tfoot(args ...any) dom.Element    { return h.El("tfoot", args...) }
func (h HTML) Tr(args ...any) dom.Element       { return h.El("tr", args...) }
func (h HTML) Th(args ...any) dom.Element       { return h.El("th", args...) }
func (h HTML) Td(args ...any) dom.Element       { return h.El("td", args...) }
func (h HTML) Caption(args ...any) dom.Element  { return h.El("caption", args...) }
func (h HTML) Colgroup(args ...any) dom.Element { return h.El("colgroup", args...) }
func (h HTML) Col(args ...any) dom.Element      { return h.El("col", args...) }

// Media and embedded content

func (h HTML) Img(args ...any) dom.Element     { return h.El("img", args...) }
func (h HTML) Picture(args ...any) dom.Element { return h.El("picture", args...) }
func (h HTML) Source(args ...any) dom.Element  { return h.El("source", args...) }
func (h HTML) Video(args ...any) dom.Element   { return h.El("video", args...) }
func (h HTML) Audio(args ...any) dom.Element   { return h.El("audio", args...) }
func (h HTML) Track(args ...any) dom.Element   { return h.El("track", args...) }
func (h HTML) Iframe(args ...any) dom.Element  { return h.El("iframe", args...) }
func (h HTML) Embed(args ...any) dom.Element   { return h.El("embed", args...) }
func (h HTML) Object(args ...any) dom.Element  { return h.El("object", args...) }
func (h HTML) Canvas(args ...any) dom.Element  { return h.El("canvas", args...) }
func (h HTML) Map(args ...any) dom.Element     { return h.El("map", args...) }
func (h HTML) Area(args ...any) dom.Element    { return h.El("area", args...) }

// Interactive elements

func (h HTML) Details(args ...any) dom.Element { return h.El("details", args...) }
func (h HTML) Summary(args ...any) dom.Element { return h.El("summary", args...) }
func (h HTML) Dialog(args ...any) dom.Element  { return h.El("dialog", args...) }
func (h HTML) Menu(args ...any) dom.Element    { return h.El("menu", args...) }

// Scripting and web components

func (h HTML) Script(args ...any) dom.Element   { return h.El("script", args...) }
func (h HTML) Noscript(args ...any) dom.Element { return h.El("noscript", args...) }
func (h HTML) Template(args ...any) dom.Element { return h.El("template", args...) }
func (h HTML) Slot(args ...any) dom.Element     { return h.El("slot", args...) }
func (h HTML) Style(args ...any) dom.Element    { return h.El("style", args...) }
