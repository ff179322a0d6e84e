package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
	"github.com/Arlahanmanthrao1/school/core/site"
	"github.com/Arlahanmanthrao1/school/services/metrics"
)

type (
	// pageData is what every page template receives.
	pageData struct {
		Title   string
		Path    string
		School  site.School
		Nav     []site.NavItem
		Popup   site.AdmissionPopup
		Content interface{}
	}

	galleryContent struct {
		Categories []string
		Active     string
		Images     []site.Image
		Lightbox   *site.Image
		ViewIndex  int
	}

	contactContent struct {
		FormID string
		Values contact.Submission
		Errors map[string]string
		Notice *contact.Notice
	}

	contactInput struct {
		FormID  string `form:"form_id"`
		Name    string `form:"name"`
		Email   string `form:"email"`
		Subject string `form:"subject"`
		Message string `form:"message"`
	}

	sitePages struct {
		school    site.School
		popup     site.AdmissionPopup
		gallery   *site.Gallery
		home      site.HomePage
		about     site.AboutPage
		academics site.AcademicsPage
		registry  *contact.Registry
		metrics   *metrics.ContactMetrics
	}
)

func registerSitePages(
	e *echo.Echo,
	conf *core.Config,
	gallery *site.Gallery,
	registry *contact.Registry,
	m *metrics.ContactMetrics,
	limits rateLimits,
) {
	school := site.NewSchool(conf)
	if gallery == nil {
		gallery = site.NewGallery()
	}
	p := sitePages{
		school:    school,
		popup:     site.NewAdmissionPopup(conf),
		gallery:   gallery,
		home:      site.NewHomePage(school),
		about:     site.NewAboutPage(school),
		academics: site.NewAcademicsPage(),
		registry:  registry,
		metrics:   m,
	}

	e.GET("/", p.homePage)
	e.GET("/about", p.aboutPage)
	e.GET("/academics", p.academicsPage)
	e.GET("/gallery", p.galleryPage)
	e.GET("/contact", p.contactPage, limits.mount)
	e.POST("/contact", p.submitContact, limits.submit)
}

func (p *sitePages) render(ctx echo.Context, code int, name, title string, content interface{}) error {
	path := ctx.Request().URL.Path
	return ctx.Render(code, name, pageData{
		Title:   title,
		Path:    path,
		School:  p.school,
		Nav:     site.Navigation(path),
		Popup:   p.popup,
		Content: content,
	})
}

// Handlers

func (p *sitePages) homePage(ctx echo.Context) error {
	return p.render(ctx, http.StatusOK, "home", "Home", p.home)
}

func (p *sitePages) aboutPage(ctx echo.Context) error {
	return p.render(ctx, http.StatusOK, "about", "About Us", p.about)
}

func (p *sitePages) academicsPage(ctx echo.Context) error {
	return p.render(ctx, http.StatusOK, "academics", "Academics", p.academics)
}

func (p *sitePages) galleryPage(ctx echo.Context) error {
	category := ctx.QueryParam("category")
	if category == "" {
		category = site.AllCategories
	}
	content := galleryContent{
		Categories: p.gallery.Categories(),
		Active:     category,
		Images:     p.gallery.Filter(category),
		ViewIndex:  -1,
	}
	if view := ctx.QueryParam("view"); view != "" {
		if i, err := strconv.Atoi(view); err == nil {
			if img, ok := p.gallery.Lightbox(category, i); ok {
				content.Lightbox = &img
				content.ViewIndex = i
			}
		}
	}
	return p.render(ctx, http.StatusOK, "gallery", "Gallery", content)
}

func (p *sitePages) contactPage(ctx echo.Context) error {
	mf := p.registry.Mount()
	return p.renderContact(ctx, http.StatusOK, mf)
}

func (p *sitePages) submitContact(ctx echo.Context) error {
	var in contactInput
	if err := ctx.Bind(&in); err != nil {
		return errors.Wrap(err, "binding to contactInput")
	}

	mf, err := p.registry.Get(in.FormID)
	if err != nil {
		mf = p.registry.Mount()
	}

	if err = mf.SetAll(contact.Submission{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}); err == nil {
		err = mf.Submit(ctx.Request().Context())
	}
	p.metrics.ObserveSubmission(err)

	var valErr *core.ValidationError
	var subErr *contact.SubmissionError
	code := http.StatusOK
	switch {
	case err == nil:
	case errors.As(err, &valErr):
		code = http.StatusBadRequest
	case errors.As(err, &subErr):
		code = http.StatusBadGateway
	case errors.Is(err, contact.ErrSubmitInFlight):
		code = http.StatusConflict
	default:
		return err
	}
	return p.renderContact(ctx, code, mf)
}

func (p *sitePages) renderContact(ctx echo.Context, code int, mf *contact.MountedForm) error {
	content := contactContent{
		FormID: mf.ID(),
		Values: mf.Values(),
		Errors: stringErrors(mf.Errors()),
	}
	if n, ok := mf.Notices.Take(); ok {
		content.Notice = &n
	}
	return p.render(ctx, code, "contact", "Contact Us", content)
}
