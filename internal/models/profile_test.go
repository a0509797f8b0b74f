package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func validProfile() Profile {
	return Profile{
		Name:  " Alex Rivera ",
		Email: "  Alex@Example.COM ",
		Bio:   " builds things ",
		Education: []Education{
			{Institution: "State University", Degree: "BSc", Field: "CS", Duration: "2018 - 2022"},
		},
		Skills: []string{" Go", "", "  ", "React "},
		Projects: []Project{
			{Title: " Shop ", Description: "store front", Skills: []string{"React", " "}, Links: nil},
		},
	}
}

func TestNormalize_TrimsAndLowercases(t *testing.T) {
	p := validProfile()
	p.Normalize()

	if p.Name != "Alex Rivera" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Email != "alex@example.com" {
		t.Errorf("Email = %q", p.Email)
	}
	if p.Bio != "builds things" {
		t.Errorf("Bio = %q", p.Bio)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "Go" || p.Skills[1] != "React" {
		t.Errorf("Skills = %q", p.Skills)
	}
	if p.Projects[0].Title != "Shop" {
		t.Errorf("project title = %q", p.Projects[0].Title)
	}
	if len(p.Projects[0].Skills) != 1 {
		t.Errorf("project skills = %q", p.Projects[0].Skills)
	}
	if p.Projects[0].Links == nil || p.Work == nil {
		t.Error("expected nil slices to be replaced with empty slices")
	}
}

func TestValidate_AcceptsCompleteProfile(t *testing.T) {
	p := validProfile()
	p.Normalize()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_RejectsMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
	}{
		{"blank name", func(p *Profile) { p.Name = "   " }},
		{"missing email", func(p *Profile) { p.Email = "" }},
		{"education without degree", func(p *Profile) { p.Education[0].Degree = "" }},
		{"project without description", func(p *Profile) { p.Projects[0].Description = " " }},
		{"work without company", func(p *Profile) {
			p.Work = []Work{{Position: "Dev", Duration: "2023", Description: "stuff"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			p.Normalize()
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "invalid profile") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestProfilePatch_ApplyReplacesOnlyPresentFields(t *testing.T) {
	p := validProfile()
	p.ID = "keep-me"
	ProfilePatch{
		Bio:    Some("new bio"),
		Skills: Some([]string{"Rust"}),
		Links:  Some(&Links{GitHub: "https://github.com/alex"}),
	}.Apply(&p)

	if p.ID != "keep-me" {
		t.Errorf("ID changed to %q", p.ID)
	}
	if p.Bio != "new bio" {
		t.Errorf("Bio = %q", p.Bio)
	}
	if len(p.Skills) != 1 || p.Skills[0] != "Rust" {
		t.Errorf("Skills = %q", p.Skills)
	}
	if p.Name != " Alex Rivera " {
		t.Errorf("Name should be untouched, got %q", p.Name)
	}
	if len(p.Projects) != 1 {
		t.Errorf("Projects should be untouched, got %d", len(p.Projects))
	}
	if p.Links == nil || p.Links.GitHub != "https://github.com/alex" {
		t.Errorf("Links = %+v", p.Links)
	}
}

func TestProfilePatch_NullClearsField(t *testing.T) {
	p := validProfile()
	p.Bio = "old"
	p.Avatar = "https://example.com/a.png"
	p.Links = &Links{GitHub: "x"}

	var patch ProfilePatch
	if err := json.Unmarshal([]byte(`{"bio": null, "links": null, "skills": null}`), &patch); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !patch.Bio.Set || !patch.Links.Set || patch.Avatar.Set {
		t.Fatalf("presence not tracked: %+v", patch)
	}
	patch.Apply(&p)

	if p.Bio != "" {
		t.Errorf("Bio = %q, want cleared", p.Bio)
	}
	if p.Links != nil {
		t.Errorf("Links = %+v, want nil", p.Links)
	}
	if p.Skills != nil {
		t.Errorf("Skills = %q, want nil", p.Skills)
	}
	if p.Avatar != "https://example.com/a.png" {
		t.Errorf("absent Avatar changed to %q", p.Avatar)
	}
}

func TestProfilePatch_DecodesPresentValues(t *testing.T) {
	var patch ProfilePatch
	if err := json.Unmarshal([]byte(`{"name": "Sam", "links": {"github": "g"}}`), &patch); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !patch.Name.Set || patch.Name.Value != "Sam" {
		t.Errorf("Name = %+v", patch.Name)
	}
	if !patch.Links.Set || patch.Links.Value == nil || patch.Links.Value.GitHub != "g" {
		t.Errorf("Links = %+v", patch.Links)
	}
	if patch.Email.Set || patch.Education.Set {
		t.Errorf("absent keys reported as set: %+v", patch)
	}

	if err := json.Unmarshal([]byte(`{"skills": "go"}`), &patch); err == nil {
		t.Error("expected type error for non-array skills")
	}
}
