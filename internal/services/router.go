package services

import (
	"net/url"

	"lancelocker.dev/internal/models"
)

// ProjectParam is the query parameter holding the selected project id
const ProjectParam = "p"

// ViewKind tells the page which view to render
type ViewKind int

const (
	GalleryView ViewKind = iota
	DetailView
)

// View is the routing decision for one request
type View struct {
	Kind    ViewKind
	Project *models.Project // set for DetailView only
}

// ResolveView picks the detail view when the p parameter names a known project
// and the gallery otherwise. A query string that cannot be parsed counts as empty.
func ResolveView(projects []models.Project, rawQuery string) View {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return View{Kind: GalleryView}
	}
	ids := values[ProjectParam]
	if len(ids) == 0 {
		return View{Kind: GalleryView}
	}
	if p := findProject(projects, ids[len(ids)-1]); p != nil {
		return View{Kind: DetailView, Project: p}
	}
	return View{Kind: GalleryView}
}

// findProject returns the last project carrying id
func findProject(projects []models.Project, id string) *models.Project {
	for i := len(projects) - 1; i >= 0; i-- {
		if projects[i].ID == id {
			return &projects[i]
		}
	}
	return nil
}

// DetailURL returns the page URL selecting a project
func DetailURL(id string) string {
	return "/?" + url.Values{ProjectParam: {id}}.Encode()
}
