// Package content defines the portfolio's editable content: profile,
// experience, education, skills, projects and visitor messages.
package content

import "time"

// Skill categories.
const (
	CategoryLanguage  = "language"
	CategoryFramework = "framework"
)

// Milestone is one entry of the short career timeline in the about section.
type Milestone struct {
	Year        string `yaml:"year" json:"year"`
	Title       string `yaml:"title" json:"title"`
	Company     string `yaml:"company" json:"company"`
	Description string `yaml:"description" json:"description"`
}

// Profile is the single-row owner profile shown in the hero and about sections.
type Profile struct {
	Name     string      `yaml:"name" json:"name" validate:"required"`
	Headline string      `yaml:"headline" json:"headline"`
	Roles    []string    `yaml:"roles" json:"roles"` // Typed out in turn by the hero rotator
	About    string      `yaml:"about" json:"about"`
	Email    string      `yaml:"email" json:"email" validate:"omitempty,email"`
	GitHub   string      `yaml:"github" json:"github" validate:"omitempty,url"`
	LinkedIn string      `yaml:"linkedin" json:"linkedin" validate:"omitempty,url"`
	Timeline []Milestone `yaml:"timeline" json:"timeline"`
}

// Experience is a job entry.
type Experience struct {
	ID           int64    `yaml:"-" json:"id"`
	Title        string   `yaml:"title" json:"title" validate:"required"`
	Company      string   `yaml:"company" json:"company" validate:"required"`
	Duration     string   `yaml:"duration" json:"duration"`
	Description  string   `yaml:"description" json:"description"`
	Tech         []string `yaml:"tech" json:"tech"`
	Achievements []string `yaml:"achievements" json:"achievements"`
}

// Education is a degree entry.
type Education struct {
	ID           int64    `yaml:"-" json:"id"`
	Degree       string   `yaml:"degree" json:"degree" validate:"required"`
	University   string   `yaml:"university" json:"university" validate:"required"`
	Duration     string   `yaml:"duration" json:"duration"`
	CGPA         string   `yaml:"cgpa" json:"cgpa"`
	Achievements []string `yaml:"achievements" json:"achievements"`
}

// Skill is a named proficiency shown as a bar.
type Skill struct {
	ID       int64  `yaml:"-" json:"id"`
	Name     string `yaml:"name" json:"name" validate:"required"`
	Category string `yaml:"category" json:"category" validate:"oneof=language framework"`
	Level    int    `yaml:"level" json:"level" validate:"min=0,max=100"` // Percent
}

// Project is a showcased project.
type Project struct {
	ID          int64    `yaml:"-" json:"id"`
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
	GitHub      string   `yaml:"github" json:"github" validate:"omitempty,url"`
	Demo        string   `yaml:"demo" json:"demo" validate:"omitempty,url"`
}

// Message is a note left through the contact form.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"min=2"`
	Email     string    `json:"email" validate:"email"`
	Body      string    `json:"message" validate:"min=10"`
	CreatedAt time.Time `json:"created_at"`
}

// Portfolio is everything rendered on the public page.
type Portfolio struct {
	Profile    Profile      `yaml:"profile" json:"profile"`
	Experience []Experience `yaml:"experience" json:"experience"`
	Education  []Education  `yaml:"education" json:"education"`
	Skills     []Skill      `yaml:"skills" json:"skills"`
	Projects   []Project    `yaml:"projects" json:"projects"`
}

// SkillsIn returns the skills of one category, in order.
func (p Portfolio) SkillsIn(category string) []Skill {
	var out []Skill
	for _, s := range p.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Section identifies a page section.
type Section struct {
	ID    string
	Title string
}

var sections = []Section{
	{ID: "hero", Title: "Home"},
	{ID: "about", Title: "About"},
	{ID: "experience", Title: "Experience"},
	{ID: "skills", Title: "Skills"},
	{ID: "projects", Title: "Projects"},
	{ID: "education", Title: "Education"},
	{ID: "contact", Title: "Contact"},
}

// Sections returns the page sections in display order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}
