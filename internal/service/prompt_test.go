package service

import (
	"strings"
	"testing"

	"news-digest/internal/domain"
)

func TestBuildInstruction_CoversTaxonomy(t *testing.T) {
	instruction := BuildInstruction()

	if len(domain.Taxonomy) != 16 {
		t.Fatalf("expected 16 sections in the taxonomy, got %d", len(domain.Taxonomy))
	}
	for _, section := range domain.Taxonomy {
		if !strings.Contains(instruction, section.Name) {
			t.Fatalf("instruction is missing section %q", section.Name)
		}
	}
	if !strings.Contains(instruction, domain.FallbackSection) {
		t.Fatal("instruction is missing the catch-all section")
	}
}

func TestBuildInstruction_DeclaresOutputFields(t *testing.T) {
	instruction := BuildInstruction()

	for _, field := range []string{"title", "subTitle", "date", "headline", "content", "staticGk"} {
		if !strings.Contains(instruction, `"`+field+`"`) {
			t.Fatalf("instruction does not declare field %q", field)
		}
	}
	if !strings.Contains(instruction, "empty array") {
		t.Fatal("instruction must tell the model that an empty array is a valid response")
	}
}

func TestBuildInstruction_Stable(t *testing.T) {
	if BuildInstruction() != BuildInstruction() {
		t.Fatal("instruction block must be fixed across calls")
	}
}
