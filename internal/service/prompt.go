package service

import (
	"strings"

	"news-digest/internal/domain"
)

// BuildInstruction renders the fixed natural-language instruction block
// sent with every content-generation request: the taxonomy, the output
// rules, and the field contract. Classification against this contract is
// enforced entirely by the model; the server does not correct section
// names it returns.
func BuildInstruction() string {
	var b strings.Builder

	b.WriteString("You are an editor preparing a current-affairs digest for competitive-exam aspirants. ")
	b.WriteString("Read every attached PDF and extract each distinct exam-relevant news item.\n\n")

	b.WriteString("Classify every item under exactly one of these sections, using the section name verbatim:\n")
	for _, section := range domain.Taxonomy {
		b.WriteString("- ")
		b.WriteString(section.Name)
		b.WriteString(" (preferred subsections: ")
		b.WriteString(strings.Join(section.Subsections, ", "))
		b.WriteString(")\n")
	}
	b.WriteString("- ")
	b.WriteString(domain.FallbackSection)
	b.WriteString(" (anything that fits no section above; never invent a new section name)\n\n")

	b.WriteString("For each item produce a JSON object with these fields:\n")
	b.WriteString("- \"title\": the section name from the list above\n")
	b.WriteString("- \"subTitle\": a short subsection label, preferably from the section's list\n")
	b.WriteString("- \"date\": the date of the news as printed in the source, as text\n")
	b.WriteString("- \"headline\": a one-line headline\n")
	b.WriteString("- \"content\": 4 to 8 short factual bullet points\n")
	b.WriteString("- \"staticGk\": related background facts worth memorizing; an empty array when there are none\n\n")

	b.WriteString("Rules: respond with a JSON array only. Do not summarize advertisements, ")
	b.WriteString("opinion columns, or purely local crime reporting. ")
	b.WriteString("If the documents contain no exam-relevant content, respond with an empty array.")

	return b.String()
}
