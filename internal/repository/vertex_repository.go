package repository

import (
	"context"
	"fmt"
	"strings"

	"news-digest/internal/domain"

	"cloud.google.com/go/vertexai/genai"
)

// generationTemperature is kept low: the output is a classification
// contract, not creative text.
const generationTemperature = 0.2

// VertexRepository implements domain.ContentGenerator against Vertex AI
// Gemini. One call carries every document payload plus the instruction
// text, and the response is constrained to the declared JSON schema.
type VertexRepository struct {
	client *genai.Client
	model  string
	logger domain.Logger
}

func NewVertexRepository(ctx context.Context, projectID, location, model string, logger domain.Logger) (*VertexRepository, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	return &VertexRepository{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// newsItemSchema is the strict output contract: an ordered sequence of
// objects with six named fields, two of which are string sequences.
var newsItemSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":    {Type: genai.TypeString},
			"subTitle": {Type: genai.TypeString},
			"date":     {Type: genai.TypeString},
			"headline": {Type: genai.TypeString},
			"content":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"staticGk": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"title", "subTitle", "date", "headline", "content", "staticGk"},
	},
}

// Generate dispatches one combined request and returns the raw response
// body. Errors are returned unclassified; the digest service decides
// what is retryable.
func (r *VertexRepository) Generate(ctx context.Context, docs []*domain.UploadedDocument, instruction string) (string, error) {
	model := r.client.GenerativeModel(r.model)
	model.SetTemperature(generationTemperature)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = newsItemSchema

	parts := make([]genai.Part, 0, len(docs)+1)
	for _, doc := range docs {
		parts = append(parts, genai.Blob{MIMEType: doc.MIMEType, Data: doc.Data})
	}
	parts = append(parts, genai.Text(instruction))

	r.logger.Debug("Dispatching content-generation request", "documents", len(docs), "model", r.model)

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}
