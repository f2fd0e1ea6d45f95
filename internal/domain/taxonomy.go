package domain

// Section is one top-level category of the fixed taxonomy, with the
// subsection labels the content service is asked to prefer.
type Section struct {
	Name        string   `json:"name"`
	Subsections []string `json:"subsections"`
}

// FallbackSection is the catch-all category for items that fit nowhere
// else. The service is instructed to use it rather than invent names.
const FallbackSection = "Miscellaneous"

// Taxonomy is the classification contract sent to the content service.
// It is enforced entirely by the model: section names in responses are
// not validated or corrected locally.
var Taxonomy = []Section{
	{Name: "Polity & Governance", Subsections: []string{"Constitution", "Parliament", "Judiciary", "Elections", "Government Schemes", "Local Governance"}},
	{Name: "Economy & Banking", Subsections: []string{"Fiscal Policy", "Monetary Policy", "Banking", "Trade & Commerce", "Taxation", "Markets"}},
	{Name: "International Relations", Subsections: []string{"Bilateral Relations", "International Organizations", "Treaties & Agreements", "Summits", "Geopolitics"}},
	{Name: "Environment & Ecology", Subsections: []string{"Climate Change", "Biodiversity", "Conservation", "Pollution", "Protected Areas"}},
	{Name: "Science & Technology", Subsections: []string{"Space", "Information Technology", "Biotechnology", "Artificial Intelligence", "Research & Innovation"}},
	{Name: "Defence & Security", Subsections: []string{"Military Exercises", "Defence Acquisitions", "Internal Security", "Cyber Security", "Border Management"}},
	{Name: "Geography & Disasters", Subsections: []string{"Physical Geography", "Natural Disasters", "Disaster Management", "Rivers & Water Bodies"}},
	{Name: "History / Art & Culture", Subsections: []string{"Heritage Sites", "Festivals", "Classical Arts", "Archaeology", "Anniversaries"}},
	{Name: "Social Issues", Subsections: []string{"Welfare Schemes", "Women & Child", "Minorities", "Poverty & Inequality", "Demographics"}},
	{Name: "Health", Subsections: []string{"Public Health", "Diseases", "Health Schemes", "Nutrition", "Medical Research"}},
	{Name: "Education & Skill Development", Subsections: []string{"Education Policy", "Higher Education", "Skill Programmes", "Literacy"}},
	{Name: "Agriculture", Subsections: []string{"Crops & Seasons", "Agricultural Schemes", "MSP & Procurement", "Allied Sectors", "Agri-tech"}},
	{Name: "Infrastructure & Energy", Subsections: []string{"Transport", "Urban Development", "Power & Renewables", "Ports & Aviation", "Connectivity Projects"}},
	{Name: "Awards & Persons in News", Subsections: []string{"National Awards", "International Awards", "Appointments", "Obituaries"}},
	{Name: "Sports", Subsections: []string{"Cricket", "Olympics & Asian Games", "Tournaments", "Sports Administration"}},
	{Name: "Reports & Indices", Subsections: []string{"Global Indices", "Government Reports", "Surveys", "Rankings"}},
}
