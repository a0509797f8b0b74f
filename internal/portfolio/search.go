package portfolio

import (
	"fmt"

	"MeAPI_Playground/internal/models"
)

// SearchResult groups the matches of one query. Profile is nil when none of
// the identity fields matched.
type SearchResult struct {
	Profile  *models.Profile  `json:"profile"`
	Projects []models.Project `json:"projects"`
	Skills   []string         `json:"skills"`
}

// Search matches query against the profile identity (name, email, bio), every
// project (title, description, skills) and the top-level skill list. Each
// category is computed on its own; a project is included at most once.
func Search(p models.Profile, query string) (SearchResult, error) {
	if query == "" {
		return SearchResult{}, fmt.Errorf("%w: query parameter \"q\" is required", ErrInvalidArgument)
	}
	term := fold(query)

	result := SearchResult{
		Projects: []models.Project{},
		Skills:   []string{},
	}

	if containsFold(p.Name, term) ||
		containsFold(p.Email, term) ||
		(p.Bio != "" && containsFold(p.Bio, term)) {
		matched := p
		result.Profile = &matched
	}

	for _, project := range p.Projects {
		if containsFold(project.Title, term) ||
			containsFold(project.Description, term) ||
			anyContainsFold(project.Skills, term) {
			result.Projects = append(result.Projects, project)
		}
	}

	for _, skill := range p.Skills {
		if containsFold(skill, term) {
			result.Skills = append(result.Skills, skill)
		}
	}

	return result, nil
}
