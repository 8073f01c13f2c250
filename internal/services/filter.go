package services

import (
	"slices"
	"strings"

	"lancelocker.dev/internal/models"
)

// SortKey selects the order of the gallery
type SortKey string

const (
	// SortFeatured keeps the document order
	SortFeatured SortKey = "Featured"
	// SortTitle orders by lower-cased title, then id
	SortTitle SortKey = "Title A→Z"
)

// SortKeys lists the sort keys in the order they are offered
func SortKeys() []SortKey {
	return []SortKey{SortFeatured, SortTitle}
}

// ParseSortKey maps a label (or its short alias) to a SortKey; anything else is SortFeatured
func ParseSortKey(s string) SortKey {
	switch strings.TrimSpace(s) {
	case string(SortTitle), "title":
		return SortTitle
	default:
		return SortFeatured
	}
}

// FilterOptions is the gallery's filter state
type FilterOptions struct {
	Tags  []string
	Query string
	Sort  SortKey
}

// FilterProjects returns the projects that carry every tag in opts.Tags and whose
// searchable text contains opts.Query, optionally sorted by title.
// The input slice is left untouched.
func FilterProjects(projects []models.Project, opts FilterOptions) []models.Project {
	query := lower(strings.TrimSpace(opts.Query))

	view := make([]models.Project, 0, len(projects))
	for i := range projects {
		if include(&projects[i], opts.Tags, query) {
			view = append(view, projects[i])
		}
	}

	if opts.Sort == SortTitle {
		slices.SortStableFunc(view, func(a, b models.Project) int {
			if c := strings.Compare(lower(a.Title), lower(b.Title)); c != 0 {
				return c
			}
			return strings.Compare(a.ID, b.ID)
		})
	}
	return view
}

func include(p *models.Project, tags []string, query string) bool {
	for _, tag := range tags {
		if !p.HasTag(tag) {
			return false
		}
	}
	if query != "" && !strings.Contains(searchText(p), query) {
		return false
	}
	return true
}

// searchText is the lower-cased blob the free-text query is matched against
func searchText(p *models.Project) string {
	factItems := make([]string, 0, len(p.Facts)*2)
	for _, f := range p.Facts {
		factItems = append(factItems, f.Items()...)
	}
	return lower(strings.Join([]string{
		p.Title,
		p.Tagline,
		p.Summary,
		strings.Join(p.Tags, " "),
		strings.Join(factItems, " "),
	}, " "))
}

// AllTags returns every tag used by the projects, sorted and without duplicates
func AllTags(projects []models.Project) []string {
	tags := []string{}
	for _, p := range projects {
		tags = append(tags, p.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}
