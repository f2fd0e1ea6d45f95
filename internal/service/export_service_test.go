package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"news-digest/internal/domain"

	"github.com/stretchr/testify/require"
)

func sampleItems() []domain.NewsItem {
	return []domain.NewsItem{
		{
			Section:         "Polity & Governance",
			Subsection:      "Parliament",
			Date:            "14 Aug 2026",
			Headline:        "New data protection amendment tabled",
			BodyPoints:      []string{"Tabled in the lower house", "Covers cross-border data flows", "Committee review due in 30 days", "Opposition sought wider consultation"},
			BackgroundFacts: []string{"The original act passed in 2023"},
		},
		{
			Section:         "Sports",
			Subsection:      "Tournaments",
			Date:            "13 Aug 2026",
			Headline:        "National chess title decided",
			BodyPoints:      []string{"Decided in the final round", "Winner qualifies for the continental event"},
			BackgroundFacts: nil,
		},
	}
}

func TestRenderDocument_Deterministic(t *testing.T) {
	s := NewExportService(&mockLogger{})
	stamp := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

	first, err := s.RenderDocument(sampleItems(), stamp)
	require.NoError(t, err)
	second, err := s.RenderDocument(sampleItems(), stamp)
	require.NoError(t, err)

	require.True(t, bytes.Equal(first, second), "repeated renders must be byte-identical")
	require.Contains(t, string(first), "15 August 2026")
	require.Contains(t, string(first), "New data protection amendment tabled")
	require.Contains(t, string(first), "Polity &amp; Governance")
}

func TestRenderDocument_EmptyList(t *testing.T) {
	s := NewExportService(&mockLogger{})

	out, err := s.RenderDocument(nil, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Contains(t, string(out), "No exam-relevant content")
}

func TestRenderTable_ColumnsAndNotApplicable(t *testing.T) {
	s := NewExportService(&mockLogger{})

	out, err := s.RenderTable(sampleItems())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 items

	require.Equal(t, []string{"Section", "Subsection", "Date", "Headline", "Body Points", "Background Facts"}, records[0])
	require.Equal(t, "Polity & Governance", records[1][0])
	require.Equal(t, strings.Join([]string{"Tabled in the lower house", "Covers cross-border data flows", "Committee review due in 30 days", "Opposition sought wider consultation"}, "\n"), records[1][4])
	require.Equal(t, "The original act passed in 2023", records[1][5])
	require.Equal(t, "Not applicable", records[2][5])
}

func TestRenderTable_Deterministic(t *testing.T) {
	s := NewExportService(&mockLogger{})

	first, err := s.RenderTable(sampleItems())
	require.NoError(t, err)
	second, err := s.RenderTable(sampleItems())
	require.NoError(t, err)
	require.True(t, bytes.Equal(first, second))
}

func TestSheetRows_Mapping(t *testing.T) {
	s := NewExportService(&mockLogger{})

	rows := s.SheetRows(sampleItems())
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Len(t, row, sheetColumnCount)
	}

	require.Equal(t, "Polity & Governance", rows[0][0])
	require.Equal(t, "Parliament", rows[0][1])
	require.Equal(t, "14 Aug 2026", rows[0][2])
	require.Equal(t, "New data protection amendment tabled", rows[0][3])
	require.Equal(t, "Not applicable", rows[1][5])
}

func TestSheetRows_Empty(t *testing.T) {
	s := NewExportService(&mockLogger{})
	require.Empty(t, s.SheetRows(nil))
}
