package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
)

// 포트폴리오 문서. 저장소에는 여러 개가 있을 수 있지만 가장 최근 것만 사용한다.
type Profile struct {
	ID        string      `json:"_id" bson:"_id" yaml:"-"`
	Name      string      `json:"name" bson:"name" yaml:"name" binding:"required"`
	Email     string      `json:"email" bson:"email" yaml:"email" binding:"required"`
	Bio       string      `json:"bio,omitempty" bson:"bio,omitempty" yaml:"bio"`
	Avatar    string      `json:"avatar,omitempty" bson:"avatar,omitempty" yaml:"avatar"`
	Education []Education `json:"education" bson:"education" yaml:"education" binding:"dive"`
	Skills    []string    `json:"skills" bson:"skills" yaml:"skills"`
	Projects  []Project   `json:"projects" bson:"projects" yaml:"projects" binding:"dive"`
	Work      []Work      `json:"work" bson:"work" yaml:"work" binding:"dive"`
	Links     *Links      `json:"links,omitempty" bson:"links,omitempty" yaml:"links"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt" yaml:"-"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updatedAt" yaml:"-"`
	// 같은 createdAt 안에서 삽입 순서. mongo 저장소만 채운다.
	Seq int64 `json:"-" bson:"seq,omitempty" yaml:"-"`
}

type Education struct {
	Institution string `json:"institution" bson:"institution" yaml:"institution" binding:"required"`
	Degree      string `json:"degree" bson:"degree" yaml:"degree" binding:"required"`
	Field       string `json:"field" bson:"field" yaml:"field" binding:"required"`
	Duration    string `json:"duration" bson:"duration" yaml:"duration" binding:"required"`
	GPA         string `json:"gpa,omitempty" bson:"gpa,omitempty" yaml:"gpa"`
}

type Project struct {
	Title       string   `json:"title" bson:"title" yaml:"title" binding:"required"`
	Description string   `json:"description" bson:"description" yaml:"description" binding:"required"`
	Links       []string `json:"links" bson:"links" yaml:"links"`
	Skills      []string `json:"skills" bson:"skills" yaml:"skills"`
	Image       string   `json:"image,omitempty" bson:"image,omitempty" yaml:"image"`
}

// 경력 항목. 검색/집계에는 쓰이지 않는다.
type Work struct {
	Company     string   `json:"company" bson:"company" yaml:"company" binding:"required"`
	Position    string   `json:"position" bson:"position" yaml:"position" binding:"required"`
	Duration    string   `json:"duration" bson:"duration" yaml:"duration" binding:"required"`
	Description string   `json:"description" bson:"description" yaml:"description" binding:"required"`
	Skills      []string `json:"skills" bson:"skills" yaml:"skills"`
}

type Links struct {
	GitHub    string `json:"github,omitempty" bson:"github,omitempty" yaml:"github"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty" yaml:"linkedin"`
	Portfolio string `json:"portfolio,omitempty" bson:"portfolio,omitempty" yaml:"portfolio"`
	Resume    string `json:"resume,omitempty" bson:"resume,omitempty" yaml:"resume"`
}

// Normalize trims every string field, lowercases the email, drops blank
// list entries and replaces nil slices with empty ones.
func (p *Profile) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Bio = strings.TrimSpace(p.Bio)
	p.Avatar = strings.TrimSpace(p.Avatar)
	p.Skills = cleanList(p.Skills)

	if p.Education == nil {
		p.Education = []Education{}
	}
	for i := range p.Education {
		e := &p.Education[i]
		e.Institution = strings.TrimSpace(e.Institution)
		e.Degree = strings.TrimSpace(e.Degree)
		e.Field = strings.TrimSpace(e.Field)
		e.Duration = strings.TrimSpace(e.Duration)
		e.GPA = strings.TrimSpace(e.GPA)
	}

	if p.Projects == nil {
		p.Projects = []Project{}
	}
	for i := range p.Projects {
		pr := &p.Projects[i]
		pr.Title = strings.TrimSpace(pr.Title)
		pr.Description = strings.TrimSpace(pr.Description)
		pr.Image = strings.TrimSpace(pr.Image)
		pr.Links = cleanList(pr.Links)
		pr.Skills = cleanList(pr.Skills)
	}

	if p.Work == nil {
		p.Work = []Work{}
	}
	for i := range p.Work {
		w := &p.Work[i]
		w.Company = strings.TrimSpace(w.Company)
		w.Position = strings.TrimSpace(w.Position)
		w.Duration = strings.TrimSpace(w.Duration)
		w.Description = strings.TrimSpace(w.Description)
		w.Skills = cleanList(w.Skills)
	}

	if p.Links != nil {
		p.Links.GitHub = strings.TrimSpace(p.Links.GitHub)
		p.Links.LinkedIn = strings.TrimSpace(p.Links.LinkedIn)
		p.Links.Portfolio = strings.TrimSpace(p.Links.Portfolio)
		p.Links.Resume = strings.TrimSpace(p.Links.Resume)
	}
}

// Validate checks required fields. Call Normalize first so that
// whitespace-only values are rejected.
func (p *Profile) Validate() error {
	if err := binding.Validator.ValidateStruct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
