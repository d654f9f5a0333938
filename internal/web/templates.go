package web

import (
	"embed"
	"encoding/base64"
	"html/template"

	"github.com/russross/blackfriday/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"markdown": renderMarkdown,
	"pngURI":   pngURI,
}).ParseFS(templateFS, "templates/*.html"))

// renderMarkdown renders captions built by the report package. Raw HTML in
// the source is escaped rather than passed through.
func renderMarkdown(s string) template.HTML {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML,
	})
	return template.HTML(blackfriday.Run([]byte(s), blackfriday.WithRenderer(renderer)))
}

func pngURI(b []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(b))
}
