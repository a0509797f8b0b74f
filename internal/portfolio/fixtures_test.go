package portfolio

import "MeAPI_Playground/internal/models"

func sampleProfile() models.Profile {
	return models.Profile{
		ID:     "p1",
		Name:   "Alex Rivera",
		Email:  "alex@example.com",
		Bio:    "Full-stack developer who likes TypeScript and Go.",
		Skills: []string{"JavaScript", "TypeScript", "React", "Go"},
		Projects: []models.Project{
			{Title: "Shop", Description: "An online store front", Skills: []string{"React", "MongoDB"}},
			{Title: "Ledger", Description: "Double-entry bookkeeping CLI", Skills: []string{"Go", "SQLite"}},
			{Title: "Chat", Description: "Realtime chat built with react hooks", Skills: []string{"Node.js", "JavaScript"}},
		},
	}
}

func titles(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}
