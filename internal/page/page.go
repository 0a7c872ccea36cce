package page

import (
	"fmt"
	"html/template"
	"io"
)

const shell = `<!DOCTYPE html>
<html>
<head>
    <base href="{{.BaseURL}}">
    <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
    <meta name="referrer" content="no-referrer-when-downgrade" />
    <title>{{.Title}}</title>
    <link href="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.7/css/bootstrap.min.css" rel="stylesheet">
    <style>
        body {
            font-family: Helvetica,Arial,sans-serif;
            min-height: 100vh;
            display: flex;
            flex-direction: column;
            justify-content: space-between;
        }
        code, pre {
            font-family: monospace;
        }
        .container {
            margin-top: 20px;
            margin-bottom: 20px;
        }
        footer {
            background-color: #f5f5f5;
            color: black;
            text-align: center;
        }
    </style>
</head>
<body>
<div class="container">
<a href="index.html">Back to root directory</a>
{{.Content}}
<a href="index.html">Back to root directory</a>
</div>
<footer>
    <h4>Generated by docbro</h4>
</footer>
</body>
</html>
`

// Template is the HTML shell every generated page is embedded in.
type Template struct {
	tmpl         *template.Template
	baseURL      string
	defaultTitle string
}

// New parses the page shell. defaultTitle is used for pages without a title.
func New(baseURL, defaultTitle string) (*Template, error) {
	t, err := template.New("page").Parse(shell)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Template{tmpl: t, baseURL: baseURL, defaultTitle: defaultTitle}, nil
}

// Render writes a full page around an HTML fragment. The fragment is
// inserted as-is.
func (t *Template) Render(w io.Writer, title, fragment string) error {
	if title == "" {
		title = t.defaultTitle
	}
	data := struct {
		BaseURL string
		Title   string
		Content template.HTML
	}{
		BaseURL: t.baseURL,
		Title:   title,
		Content: template.HTML(fragment),
	}
	if err := t.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
