// Package content holds the static text of the portfolio: profile,
// about, skills, projects and contact details.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var embedded []byte

type Portfolio struct {
	Profile       Profile         `yaml:"profile"`
	About         About           `yaml:"about"`
	Organizations []Organization  `yaml:"organizations"`
	Skills        []SkillCategory `yaml:"skills"`
	Projects      []Project       `yaml:"projects"`
	Contact       Contact         `yaml:"contact"`
}

type Profile struct {
	Name     string `yaml:"name"`
	Initials string `yaml:"initials"`
	Role     string `yaml:"role"`
	Avatar   string `yaml:"avatar"`
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
}

type About struct {
	Paragraphs []string `yaml:"paragraphs"`
	Bullets    []string `yaml:"bullets"`
}

type Organization struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// URL is the organisation's GitHub page.
func (o Organization) URL() string { return "https://github.com/" + o.Name }

type SkillCategory struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Link        string   `yaml:"link"`
	Org         string   `yaml:"org,omitempty"`
}

type Contact struct {
	Intro string `yaml:"intro"`
	Links []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the built-in portfolio.
func Default() (*Portfolio, error) {
	return Parse(embedded)
}

// Load reads a portfolio file, or the built-in one when path is empty.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Profile.Initials == "" {
		p.Profile.Initials = initials(p.Profile.Name)
	}
	return &p, nil
}

func (p *Portfolio) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Profile.Name) == "" {
		errs = append(errs, errors.New("profile name is empty"))
	}
	for i, pr := range p.Projects {
		if pr.Title == "" {
			errs = append(errs, fmt.Errorf("project %d has no title", i))
		}
		if pr.Link == "" {
			errs = append(errs, fmt.Errorf("project %q has no link", pr.Title))
		}
	}
	for i, l := range p.Contact.Links {
		if l.URL == "" {
			errs = append(errs, fmt.Errorf("contact link %d has no url", i))
		}
	}
	return errors.Join(errs...)
}

func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(w[:1]))
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}
