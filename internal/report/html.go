package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/aherreros/shopprobe/internal/domain"
)

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 64rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
code, pre { background: #f4f4f4; }
pre { padding: 0.6rem; overflow-x: auto; }
</style>
</head>
<body>
%s</body>
</html>
`

// RenderHTML converts a Markdown report into a standalone HTML page.
// The GFM table extension is required for the scenario table.
func RenderHTML(title, markdown string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", domain.NewError("report", "", "", "failed to convert report to HTML", err)
	}

	return fmt.Sprintf(htmlShell, html.EscapeString(title), body.String()), nil
}
