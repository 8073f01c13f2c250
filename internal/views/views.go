package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed static
var embeddedStatic embed.FS

// Static returns the embedded stylesheet tree, rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// ModelViewer is the data for one <model-viewer> embed
type ModelViewer struct {
	Src    string
	Height int
	Zoom   bool
}

// Renderer executes the page templates.
// In dev mode templates are parsed again on every render.
type Renderer struct {
	fsys fs.FS
	dev  bool

	mu    sync.RWMutex
	cache *template.Template
}

// NewRenderer parses the templates from dir, or from the embedded set when dir is empty
func NewRenderer(dir string, dev bool) (*Renderer, error) {
	var fsys fs.FS
	if strings.TrimSpace(dir) != "" {
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	t, err := parseTemplates(fsys)
	if err != nil {
		return nil, err
	}
	return &Renderer{fsys: fsys, dev: dev, cache: t}, nil
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	funcMap := template.FuncMap{
		"markdown": Markdown,
		"viewer": func(src string, height int, zoom bool) ModelViewer {
			return ModelViewer{Src: src, Height: height, Zoom: zoom}
		},
	}
	t, err := template.New("_root").Funcs(funcMap).ParseFS(fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Render executes the named template into w. Output is buffered so a failing
// template never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, err := r.templates()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (r *Renderer) templates() (*template.Template, error) {
	if r.dev {
		t, err := parseTemplates(r.fsys)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache = t
		r.mu.Unlock()
		return t, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cache, nil
}
