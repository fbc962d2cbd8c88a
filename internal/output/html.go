package output

import "html/template"

// HTMLDigestWriter writes the digest as a standalone HTML document.
type HTMLDigestWriter struct{}

var htmlTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Changelog Digest {{.Range}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
h2 { border-bottom: 1px solid #ddd; padding-bottom: .25rem; }
.meta { color: #666; }
.empty { color: #999; font-style: italic; }
</style>
</head>
<body>
<h1>Changelog Digest ({{.Range}})</h1>
<p class="meta">Repository: {{.RepoPath}} &middot; Audience: {{.Audience}}</p>
{{range .Sections}}<h2>{{.Title}}</h2>
{{if .Items}}<ul>
{{range .Items}}<li>{{.}}</li>
{{end}}</ul>
{{else}}<p class="empty">No changes in this period.</p>
{{end}}{{end}}</body>
</html>
`))

type htmlSection struct {
	Title string
	Items []string
}

type htmlData struct {
	Range    string
	RepoPath string
	Audience string
	Sections []htmlSection
}

// Write outputs the digest report as HTML.
func (w *HTMLDigestWriter) Write(report *DigestReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	data := htmlData{
		Range:    rangeLabel(report.Digest.Range.Start, report.Digest.Range.End),
		RepoPath: report.RepoPath,
		Audience: report.Audience,
	}
	for _, section := range report.Digest.Sections {
		data.Sections = append(data.Sections, htmlSection{
			Title: section.Category.Title(),
			Items: section.Items,
		})
	}

	return htmlTemplate.Execute(out, data)
}
