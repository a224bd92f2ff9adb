package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/termfolio/internal/content"
)

// List columns hold JSON arrays.
func encodeJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeStrings(s string) []string {
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// --- Profile ---

// GetProfile returns the owner profile or ErrNotFound.
func (s *Store) GetProfile() (content.Profile, error) {
	var p content.Profile
	var roles, timeline string
	err := s.db.QueryRow(
		`SELECT name, headline, roles, about, email, github, linkedin, timeline
		 FROM profile WHERE id = 1`,
	).Scan(&p.Name, &p.Headline, &roles, &p.About, &p.Email, &p.GitHub, &p.LinkedIn, &timeline)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Profile{}, fmt.Errorf("storage: profile: %w", ErrNotFound)
	}
	if err != nil {
		return content.Profile{}, fmt.Errorf("storage: cannot get profile: %w", err)
	}

	p.Roles = decodeStrings(roles)
	if err := json.Unmarshal([]byte(timeline), &p.Timeline); err != nil {
		p.Timeline = nil
	}
	return p, nil
}

// SaveProfile creates or replaces the owner profile.
func (s *Store) SaveProfile(p content.Profile) error {
	return saveProfile(s.db, p)
}

func saveProfile(db execer, p content.Profile) error {
	_, err := db.Exec(
		`INSERT INTO profile (id, name, headline, roles, about, email, github, linkedin, timeline, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			headline = excluded.headline,
			roles = excluded.roles,
			about = excluded.about,
			email = excluded.email,
			github = excluded.github,
			linkedin = excluded.linkedin,
			timeline = excluded.timeline,
			updated_at = CURRENT_TIMESTAMP`,
		p.Name, p.Headline, encodeJSON(p.Roles), p.About, p.Email, p.GitHub, p.LinkedIn, encodeJSON(p.Timeline),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// --- Experience ---

const experienceCols = `id, title, company, duration, description, tech, achievements`

func scanExperience(row scanner) (content.Experience, error) {
	var e content.Experience
	var tech, achievements string
	if err := row.Scan(&e.ID, &e.Title, &e.Company, &e.Duration, &e.Description, &tech, &achievements); err != nil {
		return e, err
	}
	e.Tech = decodeStrings(tech)
	e.Achievements = decodeStrings(achievements)
	return e, nil
}

// ListExperiences returns all experience entries in insertion order.
func (s *Store) ListExperiences() ([]content.Experience, error) {
	rows, err := s.db.Query(`SELECT ` + experienceCols + ` FROM experience ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list experience: %w", err)
	}
	defer rows.Close()

	var out []content.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan experience: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetExperience returns one experience entry or ErrNotFound.
func (s *Store) GetExperience(id int64) (content.Experience, error) {
	e, err := scanExperience(s.db.QueryRow(`SELECT `+experienceCols+` FROM experience WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return e, fmt.Errorf("storage: experience %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot get experience: %w", err)
	}
	return e, nil
}

// CreateExperience inserts an entry and returns its ID.
func (s *Store) CreateExperience(e content.Experience) (int64, error) {
	return insertExperience(s.db, e)
}

func insertExperience(db execer, e content.Experience) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO experience (title, company, duration, description, tech, achievements)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Title, e.Company, e.Duration, e.Description, encodeJSON(e.Tech), encodeJSON(e.Achievements),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create experience: %w", err)
	}
	return res.LastInsertId()
}

// UpdateExperience replaces the entry with e.ID.
func (s *Store) UpdateExperience(e content.Experience) error {
	res, err := s.db.Exec(
		`UPDATE experience SET title = ?, company = ?, duration = ?, description = ?, tech = ?, achievements = ?
		 WHERE id = ?`,
		e.Title, e.Company, e.Duration, e.Description, encodeJSON(e.Tech), encodeJSON(e.Achievements), e.ID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update experience: %w", err)
	}
	return affectedOne(res, fmt.Sprintf("experience %d", e.ID))
}

// DeleteExperience removes the entry with the given ID.
func (s *Store) DeleteExperience(id int64) error {
	return s.deleteRow("experience", id)
}

// --- Education ---

const educationCols = `id, degree, university, duration, cgpa, achievements`

func scanEducation(row scanner) (content.Education, error) {
	var e content.Education
	var achievements string
	if err := row.Scan(&e.ID, &e.Degree, &e.University, &e.Duration, &e.CGPA, &achievements); err != nil {
		return e, err
	}
	e.Achievements = decodeStrings(achievements)
	return e, nil
}

// ListEducation returns all education entries in insertion order.
func (s *Store) ListEducation() ([]content.Education, error) {
	rows, err := s.db.Query(`SELECT ` + educationCols + ` FROM education ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list education: %w", err)
	}
	defer rows.Close()

	var out []content.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan education: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetEducation returns one education entry or ErrNotFound.
func (s *Store) GetEducation(id int64) (content.Education, error) {
	e, err := scanEducation(s.db.QueryRow(`SELECT `+educationCols+` FROM education WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return e, fmt.Errorf("storage: education %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot get education: %w", err)
	}
	return e, nil
}

// CreateEducation inserts an entry and returns its ID.
func (s *Store) CreateEducation(e content.Education) (int64, error) {
	return insertEducation(s.db, e)
}

func insertEducation(db execer, e content.Education) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO education (degree, university, duration, cgpa, achievements) VALUES (?, ?, ?, ?, ?)`,
		e.Degree, e.University, e.Duration, e.CGPA, encodeJSON(e.Achievements),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create education: %w", err)
	}
	return res.LastInsertId()
}

// UpdateEducation replaces the entry with e.ID.
func (s *Store) UpdateEducation(e content.Education) error {
	res, err := s.db.Exec(
		`UPDATE education SET degree = ?, university = ?, duration = ?, cgpa = ?, achievements = ? WHERE id = ?`,
		e.Degree, e.University, e.Duration, e.CGPA, encodeJSON(e.Achievements), e.ID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update education: %w", err)
	}
	return affectedOne(res, fmt.Sprintf("education %d", e.ID))
}

// DeleteEducation removes the entry with the given ID.
func (s *Store) DeleteEducation(id int64) error {
	return s.deleteRow("education", id)
}

// --- Skills ---

const skillCols = `id, name, category, level`

func scanSkill(row scanner) (content.Skill, error) {
	var sk content.Skill
	err := row.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Level)
	return sk, err
}

// ListSkills returns all skills in insertion order.
func (s *Store) ListSkills() ([]content.Skill, error) {
	rows, err := s.db.Query(`SELECT ` + skillCols + ` FROM skills ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list skills: %w", err)
	}
	defer rows.Close()

	var out []content.Skill
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan skill: %w", err)
		}
		out = append(out, sk)
	}
	return out, rows.Err()
}

// GetSkill returns one skill or ErrNotFound.
func (s *Store) GetSkill(id int64) (content.Skill, error) {
	sk, err := scanSkill(s.db.QueryRow(`SELECT `+skillCols+` FROM skills WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return sk, fmt.Errorf("storage: skill %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return sk, fmt.Errorf("storage: cannot get skill: %w", err)
	}
	return sk, nil
}

// CreateSkill inserts a skill and returns its ID.
func (s *Store) CreateSkill(sk content.Skill) (int64, error) {
	return insertSkill(s.db, sk)
}

func insertSkill(db execer, sk content.Skill) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO skills (name, category, level) VALUES (?, ?, ?)`,
		sk.Name, sk.Category, sk.Level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create skill: %w", err)
	}
	return res.LastInsertId()
}

// UpdateSkill replaces the skill with sk.ID.
func (s *Store) UpdateSkill(sk content.Skill) error {
	res, err := s.db.Exec(
		`UPDATE skills SET name = ?, category = ?, level = ? WHERE id = ?`,
		sk.Name, sk.Category, sk.Level, sk.ID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update skill: %w", err)
	}
	return affectedOne(res, fmt.Sprintf("skill %d", sk.ID))
}

// DeleteSkill removes the skill with the given ID.
func (s *Store) DeleteSkill(id int64) error {
	return s.deleteRow("skills", id)
}

// --- Projects ---

const projectCols = `id, title, description, tech, github, demo`

func scanProject(row scanner) (content.Project, error) {
	var p content.Project
	var tech string
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &tech, &p.GitHub, &p.Demo); err != nil {
		return p, err
	}
	p.Tech = decodeStrings(tech)
	return p, nil
}

// ListProjects returns all projects in insertion order.
func (s *Store) ListProjects() ([]content.Project, error) {
	rows, err := s.db.Query(`SELECT ` + projectCols + ` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list projects: %w", err)
	}
	defer rows.Close()

	var out []content.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetProject returns one project or ErrNotFound.
func (s *Store) GetProject(id int64) (content.Project, error) {
	p, err := scanProject(s.db.QueryRow(`SELECT `+projectCols+` FROM projects WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("storage: project %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return p, fmt.Errorf("storage: cannot get project: %w", err)
	}
	return p, nil
}

// CreateProject inserts a project and returns its ID.
func (s *Store) CreateProject(p content.Project) (int64, error) {
	return insertProject(s.db, p)
}

func insertProject(db execer, p content.Project) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO projects (title, description, tech, github, demo) VALUES (?, ?, ?, ?, ?)`,
		p.Title, p.Description, encodeJSON(p.Tech), p.GitHub, p.Demo,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create project: %w", err)
	}
	return res.LastInsertId()
}

// UpdateProject replaces the project with p.ID.
func (s *Store) UpdateProject(p content.Project) error {
	res, err := s.db.Exec(
		`UPDATE projects SET title = ?, description = ?, tech = ?, github = ?, demo = ? WHERE id = ?`,
		p.Title, p.Description, encodeJSON(p.Tech), p.GitHub, p.Demo, p.ID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update project: %w", err)
	}
	return affectedOne(res, fmt.Sprintf("project %d", p.ID))
}

// DeleteProject removes the project with the given ID.
func (s *Store) DeleteProject(id int64) error {
	return s.deleteRow("projects", id)
}

// deleteRow deletes by ID from one of the content tables. table is never
// user input.
func (s *Store) deleteRow(table string, id int64) error {
	res, err := s.db.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete from %s: %w", table, err)
	}
	return affectedOne(res, fmt.Sprintf("%s %d", table, id))
}

// --- Portfolio ---

// LoadPortfolio assembles everything shown on the public page. A missing
// profile yields an empty one.
func (s *Store) LoadPortfolio() (content.Portfolio, error) {
	var p content.Portfolio
	var err error

	p.Profile, err = s.GetProfile()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return p, err
	}
	if p.Experience, err = s.ListExperiences(); err != nil {
		return p, err
	}
	if p.Education, err = s.ListEducation(); err != nil {
		return p, err
	}
	if p.Skills, err = s.ListSkills(); err != nil {
		return p, err
	}
	if p.Projects, err = s.ListProjects(); err != nil {
		return p, err
	}
	return p, nil
}

// IsEmpty reports whether no portfolio content has been stored yet.
func (s *Store) IsEmpty() (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT (SELECT COUNT(*) FROM profile) + (SELECT COUNT(*) FROM experience) +
		        (SELECT COUNT(*) FROM education) + (SELECT COUNT(*) FROM skills) +
		        (SELECT COUNT(*) FROM projects)`,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot count content: %w", err)
	}
	return n == 0, nil
}

// SeedIfEmpty stores p when the database holds no content yet.
// It reports whether the seed was written.
func (s *Store) SeedIfEmpty(p content.Portfolio) (bool, error) {
	empty, err := s.IsEmpty()
	if err != nil || !empty {
		return false, err
	}
	if err := s.ReplacePortfolio(p); err != nil {
		return false, err
	}
	return true, nil
}

// ReplacePortfolio discards all stored content and writes p in a single
// transaction. Messages and scores are kept.
func (s *Store) ReplacePortfolio(p content.Portfolio) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	for _, table := range []string{"profile", "experience", "education", "skills", "projects"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}

	if p.Profile.Name != "" {
		if err := saveProfile(tx, p.Profile); err != nil {
			return err
		}
	}
	for _, e := range p.Experience {
		if _, err := insertExperience(tx, e); err != nil {
			return err
		}
	}
	for _, e := range p.Education {
		if _, err := insertEducation(tx, e); err != nil {
			return err
		}
	}
	for _, sk := range p.Skills {
		if _, err := insertSkill(tx, sk); err != nil {
			return err
		}
	}
	for _, pr := range p.Projects {
		if _, err := insertProject(tx, pr); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit portfolio: %w", err)
	}
	return nil
}
