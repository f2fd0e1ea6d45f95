package domain

// UploadedDocument is one PDF accepted from the upload form. The raw bytes
// travel as-is into the generative-content request; nothing is persisted.
type UploadedDocument struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Data        []byte `json:"-"`
	MIMEType    string `json:"mime_type"`
	SizeBytes   int64  `json:"size_bytes"`
	PageCount   int    `json:"page_count"`
}

// NewsItem is one categorized current-affairs entry returned by the
// content service. The JSON tags are the service's declared output
// contract and double as the API wire format; the server never rewrites
// a returned item beyond display formatting.
type NewsItem struct {
	Section         string   `json:"title"`
	Subsection      string   `json:"subTitle"`
	Date            string   `json:"date"`
	Headline        string   `json:"headline"`
	BodyPoints      []string `json:"content"`
	BackgroundFacts []string `json:"staticGk"`
}

// DigestResult is the digest endpoint response: the extracted items plus
// an echo of the validated upload queue for the client to display.
type DigestResult struct {
	Items     []NewsItem          `json:"items"`
	Count     int                 `json:"count"`
	Documents []*UploadedDocument `json:"documents"`
}
