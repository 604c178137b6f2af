// Package catalog serves the static marketing content of the site.
package catalog

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v4"
)

//go:embed content.yaml
var defaultContent []byte

type Highlight struct {
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
}

type Home struct {
	Headline       string      `yaml:"headline" json:"headline"`
	Tagline        string      `yaml:"tagline" json:"tagline"`
	Intro          string      `yaml:"intro" json:"intro"`
	Highlights     []Highlight `yaml:"highlights" json:"highlights"`
	CallToAction   Highlight   `yaml:"callToAction" json:"callToAction"`
	DemoTrackingID string      `yaml:"demoTrackingId" json:"demoTrackingId"`
}

// Service is one service line. Transport links it to a quote transport type, if any.
type Service struct {
	ID          int    `yaml:"id" json:"id"`
	Slug        string `yaml:"slug" json:"slug"`
	Title       string `yaml:"title" json:"title"`
	Transport   string `yaml:"transport,omitempty" json:"transport,omitempty"`
	Description string `yaml:"description" json:"description"`
}

type Catalog struct {
	Home     Home      `yaml:"home" json:"home"`
	Services []Service `yaml:"services" json:"services"`
}

// Default returns the embedded content.
func Default() (Catalog, error) {
	return Parse(defaultContent)
}

// Parse decodes catalog YAML and checks that service slugs are unique.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(c.Services))
	for _, s := range c.Services {
		if s.Slug == "" || s.Title == "" {
			return Catalog{}, fmt.Errorf("catalog service %d: slug and title are required", s.ID)
		}
		if seen[s.Slug] {
			return Catalog{}, fmt.Errorf("catalog service %q: duplicate slug", s.Slug)
		}
		seen[s.Slug] = true
	}
	return c, nil
}

// ServiceBySlug finds a service line.
func (c Catalog) ServiceBySlug(slug string) (Service, bool) {
	for _, s := range c.Services {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}
