package echoapi

import (
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Arlahanmanthrao1/school/assets"
)

const layoutTemplate = "layout"

// renderer executes the site pages. Every page is parsed with the layout & the `_` partials,
// so that each page can define its own "content" block.
type renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*renderer)(nil)

var templateFuncs = template.FuncMap{
	"year":    func() int { return time.Now().Year() },
	// tel: links are not in html/template's list of safe schemes
	"safeURL": func(s string) template.URL { return template.URL(s) },
}

func newRenderer(fsys fs.FS, dir string) (*renderer, error) {
	partials, err := fs.Glob(fsys, path.Join(dir, "_*.gohtml"))
	if err != nil {
		return nil, err
	}
	pages, err := fs.Glob(fsys, path.Join(dir, "*.gohtml"))
	if err != nil {
		return nil, err
	}

	r := &renderer{pages: make(map[string]*template.Template)}
	for _, fp := range pages {
		fname := path.Base(fp)
		if strings.HasPrefix(fname, "_") {
			continue
		}
		files := append([]string{fp}, partials...)
		tmpl, err := template.New(fname).Funcs(templateFuncs).ParseFS(fsys, files...)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", fname)
		}
		r.pages[strings.TrimSuffix(fname, ".gohtml")] = tmpl
	}
	return r, nil
}

func mustNewRenderer() *renderer {
	r, err := newRenderer(assets.FS, assets.SiteTemplatesDir)
	if err != nil {
		panic(errors.Wrap(err, "parsing site templates"))
	}
	return r
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("site template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, layoutTemplate, data)
}
