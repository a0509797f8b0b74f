package models

import "encoding/json"

// Optional records whether a JSON key was present. A present null leaves
// Value at its zero value with Set true.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// encoding/json calls this for a present key even when its value is null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	var zero T
	o.Value = zero
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// PUT /api/profile 요청 바디. 존재하는 최상위 필드만 통째로 교체하고, null은 필드를 비운다.
type ProfilePatch struct {
	Name      Optional[string]      `json:"name"`
	Email     Optional[string]      `json:"email"`
	Bio       Optional[string]      `json:"bio"`
	Avatar    Optional[string]      `json:"avatar"`
	Education Optional[[]Education] `json:"education"`
	Skills    Optional[[]string]    `json:"skills"`
	Projects  Optional[[]Project]   `json:"projects"`
	Work      Optional[[]Work]      `json:"work"`
	Links     Optional[*Links]      `json:"links"`
}

// Apply copies every present field onto p. Identity and timestamps are never
// touched.
func (patch ProfilePatch) Apply(p *Profile) {
	if patch.Name.Set {
		p.Name = patch.Name.Value
	}
	if patch.Email.Set {
		p.Email = patch.Email.Value
	}
	if patch.Bio.Set {
		p.Bio = patch.Bio.Value
	}
	if patch.Avatar.Set {
		p.Avatar = patch.Avatar.Value
	}
	if patch.Education.Set {
		p.Education = patch.Education.Value
	}
	if patch.Skills.Set {
		p.Skills = patch.Skills.Value
	}
	if patch.Projects.Set {
		p.Projects = patch.Projects.Value
	}
	if patch.Work.Set {
		p.Work = patch.Work.Value
	}
	if patch.Links.Set {
		p.Links = nil
		if patch.Links.Value != nil {
			links := *patch.Links.Value
			p.Links = &links
		}
	}
}
