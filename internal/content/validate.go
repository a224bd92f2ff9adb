package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid marks content that failed validation.
var ErrInvalid = errors.New("invalid content")

var validate = validator.New(validator.WithRequiredStructEnabled())

// messages holds user-facing text for known field failures.
var messages = map[string]string{
	"Message.Name":  "Name is required",
	"Message.Email": "Invalid email address",
	"Message.Body":  "Message must be at least 10 characters",
	"Skill.Level":   "Level must be between 0 and 100",
	"Skill.Category": fmt.Sprintf("Category must be %q or %q",
		CategoryLanguage, CategoryFramework),
}

// check runs struct validation and turns the first failure into an
// ErrInvalid-wrapped error.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	fe := fieldErrs[0]
	key := fe.StructNamespace()
	if msg, ok := messages[key]; ok {
		return fmt.Errorf("%w: %s", ErrInvalid, msg)
	}
	return fmt.Errorf("%w: %s failed %q", ErrInvalid, strings.ToLower(fe.Field()), fe.Tag())
}

// Validate checks the profile.
func (p Profile) Validate() error { return check(p) }

// Validate checks the experience entry.
func (e Experience) Validate() error { return check(e) }

// Validate checks the education entry.
func (e Education) Validate() error { return check(e) }

// Validate checks the skill.
func (s Skill) Validate() error { return check(s) }

// Validate checks the project.
func (p Project) Validate() error { return check(p) }

// Validate checks a contact message. Leading and trailing spaces do not
// count towards the minimum lengths.
func (m Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)
	return check(m)
}

// Validate checks every entry of the portfolio.
func (p Portfolio) Validate() error {
	if err := p.Profile.Validate(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	for i, e := range p.Experience {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("experience[%d]: %w", i, err)
		}
	}
	for i, e := range p.Education {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("education[%d]: %w", i, err)
		}
	}
	for i, s := range p.Skills {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("skills[%d]: %w", i, err)
		}
	}
	for i, pr := range p.Projects {
		if err := pr.Validate(); err != nil {
			return fmt.Errorf("projects[%d]: %w", i, err)
		}
	}
	return nil
}
