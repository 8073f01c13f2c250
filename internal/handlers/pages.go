package handlers

import (
	"net/http"
	"slices"

	"go.uber.org/zap"

	"lancelocker.dev/internal/config"
	"lancelocker.dev/internal/logging"
	"lancelocker.dev/internal/models"
	"lancelocker.dev/internal/services"
	"lancelocker.dev/internal/views"
)

const cardBadgeLimit = 3

// PageData is the view model for the single page
type PageData struct {
	Title   string
	Kicker  string
	Profile *models.Profile
	Gallery *GalleryData
	Detail  *DetailData
}

// GalleryData is the filter bar state and the cards that survived it
type GalleryData struct {
	Query string
	Tags  []TagOption
	Sorts []SortOption
	Cards []CardData
}

// TagOption is one checkbox in the filter bar
type TagOption struct {
	Name   string
	Active bool
}

// SortOption is one entry of the sort select
type SortOption struct {
	Value    string
	Selected bool
}

// CardData is a project as shown in the gallery grid
type CardData struct {
	ID       string
	Title    string
	Tagline  string
	ModelSrc string
	URL      string
	Badges   []string
}

// DetailData is the project detail view
type DetailData struct {
	Project  *models.Project
	ModelSrc string
	Images   []string
}

// PageHandler renders the gallery and detail views
type PageHandler struct {
	lockers  *services.LockerService
	renderer *views.Renderer
	site     config.SiteConfig
	assets   services.AssetPaths
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ls *services.LockerService, renderer *views.Renderer, site config.SiteConfig, assets services.AssetPaths) *PageHandler {
	return &PageHandler{lockers: ls, renderer: renderer, site: site, assets: assets}
}

// Page handles GET /?p=<id>. Without a known id the gallery is rendered,
// filtered by q, tag and sort.
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request) {
	svc := services.NewProjectService(h.lockers.Current())

	data := PageData{
		Title:   h.site.Title,
		Kicker:  h.site.Kicker,
		Profile: svc.Profile(),
	}
	if view := svc.Route(r.URL.RawQuery); view.Kind == services.DetailView {
		images := make([]string, 0, len(view.Project.Images))
		for _, img := range view.Project.Images {
			images = append(images, h.assets.URL(img))
		}
		data.Detail = &DetailData{
			Project:  view.Project,
			ModelSrc: h.assets.URL(services.ResolveModelSrc(view.Project.Model, view.Project.ID)),
			Images:   images,
		}
	} else {
		data.Gallery = h.buildGallery(svc, filterOptions(r))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "base", data); err != nil {
		logging.FromContext(r.Context()).Error("render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *PageHandler) buildGallery(svc *services.ProjectService, opts services.FilterOptions) *GalleryData {
	g := &GalleryData{Query: opts.Query}

	for _, tag := range svc.Tags() {
		g.Tags = append(g.Tags, TagOption{Name: tag, Active: slices.Contains(opts.Tags, tag)})
	}
	for _, key := range services.SortKeys() {
		g.Sorts = append(g.Sorts, SortOption{Value: string(key), Selected: key == opts.Sort})
	}
	for _, p := range svc.Search(opts) {
		badges := p.Tags
		if len(badges) > cardBadgeLimit {
			badges = badges[:cardBadgeLimit]
		}
		g.Cards = append(g.Cards, CardData{
			ID:       p.ID,
			Title:    p.Title,
			Tagline:  p.Tagline,
			ModelSrc: h.assets.URL(services.ResolveModelSrc(p.Model, p.ID)),
			URL:      services.DetailURL(p.ID),
			Badges:   badges,
		})
	}
	return g
}
