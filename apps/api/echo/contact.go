package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Arlahanmanthrao1/school/core/contact"
	"github.com/Arlahanmanthrao1/school/services/metrics"
)

type (
	contactApi struct {
		registry *contact.Registry
		metrics  *metrics.ContactMetrics
	}

	formView struct {
		ID     string             `json:"id"`
		State  contact.State      `json:"state"`
		Values contact.Submission `json:"values"`
		Errors map[string]string  `json:"errors"`
	}

	fieldUpdate struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}

	submitView struct {
		Notice *contact.Notice `json:"notice,omitempty"`
		Form   *formView       `json:"form,omitempty"`
	}
)

func registerContactAPI(g *echo.Group, registry *contact.Registry, m *metrics.ContactMetrics, limits rateLimits) {
	api := contactApi{registry: registry, metrics: m}

	cg := g.Group("/contact")
	cg.POST("", api.send, limits.submit)
	cg.POST("/forms", api.mount, limits.mount)

	dg := cg.Group("/forms/:id")
	dg.GET("", api.retrieve)
	dg.PATCH("", api.update)
	dg.DELETE("", api.unmount)
	dg.POST("/submit", api.submit, limits.submit)
}

func newFormView(f *contact.Form) *formView {
	return &formView{
		ID:     f.ID(),
		State:  f.State(),
		Values: f.Values(),
		Errors: stringErrors(f.Errors()),
	}
}

func stringErrors(fe contact.FieldErrors) map[string]string {
	m := make(map[string]string, len(fe))
	for f, msg := range fe {
		m[string(f)] = msg
	}
	return m
}

// Handlers

func (api *contactApi) mount(ctx echo.Context) error {
	mf := api.registry.Mount()
	return ctx.JSON(http.StatusCreated, newFormView(mf.Form))
}

func (api *contactApi) retrieve(ctx echo.Context) error {
	mf, err := api.registry.Get(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newFormView(mf.Form))
}

func (api *contactApi) update(ctx echo.Context) error {
	mf, err := api.registry.Get(ctx.Param("id"))
	if err != nil {
		return err
	}
	var data fieldUpdate
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to fieldUpdate")
	}
	if err = mf.Set(contact.Field(data.Field), data.Value); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newFormView(mf.Form))
}

func (api *contactApi) unmount(ctx echo.Context) error {
	api.registry.Unmount(ctx.Param("id"))
	return ctx.NoContent(http.StatusNoContent)
}

func (api *contactApi) submit(ctx echo.Context) error {
	mf, err := api.registry.Get(ctx.Param("id"))
	if err != nil {
		return err
	}
	return api.submitForm(ctx, mf)
}

// send mounts a throwaway form for one submission.
func (api *contactApi) send(ctx echo.Context) error {
	var data contact.Submission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Submission")
	}

	mf := api.registry.Mount()
	defer api.registry.Unmount(mf.ID())

	if err := mf.SetAll(data); err != nil {
		return err
	}
	return api.submitForm(ctx, mf)
}

func (api *contactApi) submitForm(ctx echo.Context, mf *contact.MountedForm) error {
	err := mf.Submit(ctx.Request().Context())
	api.metrics.ObserveSubmission(err)

	var subErr *contact.SubmissionError
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, api.submitView(mf))
	case errors.As(err, &subErr):
		return ctx.JSON(http.StatusBadGateway, api.submitView(mf))
	}
	return err
}

func (api *contactApi) submitView(mf *contact.MountedForm) submitView {
	v := submitView{Form: newFormView(mf.Form)}
	if n, ok := mf.Notices.Take(); ok {
		v.Notice = &n
	}
	return v
}
