package portfolio

import "MeAPI_Playground/internal/models"

// FilterProjectsBySkill returns the projects having at least one skill that
// contains skill, case-insensitively. An empty skill returns every project.
// Source order is kept.
func FilterProjectsBySkill(p models.Profile, skill string) []models.Project {
	if skill == "" {
		return p.Projects
	}

	term := fold(skill)
	out := make([]models.Project, 0, len(p.Projects))
	for _, project := range p.Projects {
		if anyContainsFold(project.Skills, term) {
			out = append(out, project)
		}
	}
	return out
}
