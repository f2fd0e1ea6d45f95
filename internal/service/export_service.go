package service

import (
	"bytes"
	"encoding/csv"
	"html/template"
	"strings"
	"time"

	"news-digest/internal/domain"
	apperrors "news-digest/pkg/errors"
)

// notApplicable is written in place of an empty background-facts cell so
// spreadsheet rows never carry a blank column.
const notApplicable = "Not applicable"

// sheetColumnCount is the fixed append range width (A:F).
const sheetColumnCount = 6

// ExportService renders a NewsItem list as a standalone HTML document, a
// CSV table, or spreadsheet row values. Every method is a pure function
// of its inputs; the date stamp in RenderDocument is passed in by the
// caller so repeated renders are byte-identical.
type ExportService struct {
	logger   domain.Logger
	document *template.Template
}

func NewExportService(logger domain.Logger) *ExportService {
	return &ExportService{
		logger:   logger,
		document: template.Must(template.New("digest").Parse(documentTemplate)),
	}
}

type documentData struct {
	GeneratedOn string
	Items       []domain.NewsItem
}

// RenderDocument produces the standalone styled editorial document used
// for printing or saving.
func (s *ExportService) RenderDocument(items []domain.NewsItem, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	data := documentData{
		GeneratedOn: generatedAt.Format("02 January 2006"),
		Items:       items,
	}
	if err := s.document.Execute(&buf, data); err != nil {
		return nil, apperrors.NewInternalError("failed to render document export", err)
	}
	return buf.Bytes(), nil
}

// RenderTable produces the tabular CSV export with a header row followed
// by one row per item in the spreadsheet column order.
func (s *ExportService) RenderTable(items []domain.NewsItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Section", "Subsection", "Date", "Headline", "Body Points", "Background Facts"}); err != nil {
		return nil, apperrors.NewInternalError("failed to render table export", err)
	}
	for _, item := range items {
		record := []string{
			item.Section,
			item.Subsection,
			item.Date,
			item.Headline,
			strings.Join(item.BodyPoints, "\n"),
			joinOrNotApplicable(item.BackgroundFacts),
		}
		if err := w.Write(record); err != nil {
			return nil, apperrors.NewInternalError("failed to render table export", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.NewInternalError("failed to render table export", err)
	}
	return buf.Bytes(), nil
}

// SheetRows maps items to the fixed six-column append payload:
// [section, subsection, date, headline, body points, background facts].
func (s *ExportService) SheetRows(items []domain.NewsItem) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, item := range items {
		rows = append(rows, []interface{}{
			item.Section,
			item.Subsection,
			item.Date,
			item.Headline,
			strings.Join(item.BodyPoints, "\n"),
			joinOrNotApplicable(item.BackgroundFacts),
		})
	}
	return rows
}

func joinOrNotApplicable(facts []string) string {
	if len(facts) == 0 {
		return notApplicable
	}
	return strings.Join(facts, "\n")
}

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Current Affairs Digest</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; }
  header { border-bottom: 3px double #1a1a1a; margin-bottom: 1.5rem; padding-bottom: 0.75rem; }
  header h1 { margin: 0; font-size: 1.9rem; letter-spacing: 0.02em; }
  header p { margin: 0.25rem 0 0; color: #555; font-style: italic; }
  article { margin-bottom: 1.75rem; page-break-inside: avoid; }
  .section { display: inline-block; background: #1a3c6e; color: #fff; font-size: 0.75rem; text-transform: uppercase; letter-spacing: 0.08em; padding: 0.15rem 0.5rem; }
  .subsection { color: #1a3c6e; font-size: 0.8rem; margin-left: 0.5rem; }
  .date { float: right; color: #777; font-size: 0.8rem; }
  h2 { margin: 0.4rem 0 0.5rem; font-size: 1.2rem; }
  ul { margin: 0.25rem 0 0.5rem 1.2rem; padding: 0; }
  li { margin-bottom: 0.2rem; line-height: 1.4; }
  .facts { background: #f5f1e6; border-left: 3px solid #b8a165; padding: 0.5rem 0.75rem; font-size: 0.9rem; }
  .facts strong { text-transform: uppercase; font-size: 0.75rem; letter-spacing: 0.06em; }
  .empty { color: #777; font-style: italic; }
</style>
</head>
<body>
<header>
  <h1>Current Affairs Digest</h1>
  <p>Generated on {{.GeneratedOn}}</p>
</header>
{{if not .Items}}<p class="empty">No exam-relevant content was found in the uploaded documents.</p>{{end}}
{{range .Items}}<article>
  <span class="section">{{.Section}}</span><span class="subsection">{{.Subsection}}</span><span class="date">{{.Date}}</span>
  <h2>{{.Headline}}</h2>
  <ul>
{{range .BodyPoints}}    <li>{{.}}</li>
{{end}}  </ul>
{{if .BackgroundFacts}}  <div class="facts"><strong>Background</strong>
    <ul>
{{range .BackgroundFacts}}      <li>{{.}}</li>
{{end}}    </ul>
  </div>
{{end}}</article>
{{end}}</body>
</html>
`
