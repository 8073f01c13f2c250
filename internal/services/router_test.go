package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lancelocker.dev/internal/models"
)

func TestResolveViewKnownIDSelectsDetail(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()
	view := ResolveView(projects, "p=alpha")
	require.Equal(t, DetailView, view.Kind)
	require.Same(t, &projects[1], view.Project)
}

func TestResolveViewFallsBackToGallery(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"p=",
		"p=ALPHA",
		"p=missing",
		"q=alpha",
		"p=%zz",
		"p=alpha;x",
	} {
		view := ResolveView(sampleProjects(), raw)
		require.Equal(t, GalleryView, view.Kind, "query %q", raw)
		require.Nil(t, view.Project)
	}
}

func TestResolveViewUsesLastParam(t *testing.T) {
	t.Parallel()

	view := ResolveView(sampleProjects(), "p=missing&p=zeta")
	require.Equal(t, DetailView, view.Kind)
	require.Equal(t, "zeta", view.Project.ID)
}

func TestResolveViewDuplicateIDPicksLast(t *testing.T) {
	t.Parallel()

	projects := []models.Project{{ID: "dup", Title: "First"}, {ID: "dup", Title: "Second"}}
	view := ResolveView(projects, "p=dup")
	require.Equal(t, "Second", view.Project.Title)
}

func TestDetailURLEscapes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/?p=example_project", DetailURL("example_project"))
	require.Equal(t, "/?p=a+b%26c", DetailURL("a b&c"))

	view := ResolveView([]models.Project{{ID: "a b&c"}}, "p=a+b%26c")
	require.Equal(t, DetailView, view.Kind)
}
