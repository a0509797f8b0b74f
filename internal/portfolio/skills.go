package portfolio

import (
	"slices"
	"strings"

	"MeAPI_Playground/internal/models"
)

const DefaultTopSkillsLimit = 10

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// TopSkills counts every skill of the profile and of its projects after
// lowercasing and trimming, and returns at most limit entries ordered by
// descending count. Equal counts keep first-encountered order.
func TopSkills(p models.Profile, limit int) []SkillCount {
	if limit <= 0 {
		return []SkillCount{}
	}

	counts := []SkillCount{}
	index := make(map[string]int)
	add := func(raw string) {
		skill := strings.TrimSpace(fold(raw))
		if i, ok := index[skill]; ok {
			counts[i].Count++
			return
		}
		index[skill] = len(counts)
		counts = append(counts, SkillCount{Skill: skill, Count: 1})
	}

	for _, skill := range p.Skills {
		add(skill)
	}
	for _, project := range p.Projects {
		for _, skill := range project.Skills {
			add(skill)
		}
	}

	slices.SortStableFunc(counts, func(a, b SkillCount) int {
		return b.Count - a.Count
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
