package output

import "encoding/json"

// JSONDigestWriter writes the digest as a JSON document.
type JSONDigestWriter struct{}

type jsonSection struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type jsonReport struct {
	Repository  string        `json:"repository"`
	Audience    string        `json:"audience"`
	GeneratedAt string        `json:"generatedAt"`
	Start       string        `json:"start"`
	End         string        `json:"end"`
	Sections    []jsonSection `json:"sections"`
}

// Write outputs the digest report as JSON.
func (w *JSONDigestWriter) Write(report *DigestReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	doc := jsonReport{
		Repository:  report.RepoPath,
		Audience:    report.Audience,
		GeneratedAt: report.GeneratedAt.Format(reportDateTimeLayout),
		Start:       report.Digest.Range.Start,
		End:         report.Digest.Range.End,
	}
	for _, section := range report.Digest.Sections {
		doc.Sections = append(doc.Sections, jsonSection{
			Category: section.Category.Key(),
			Items:    section.Items,
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
