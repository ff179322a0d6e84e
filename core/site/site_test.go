package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Arlahanmanthrao1/school/core"
)

func TestGallery_Categories(t *testing.T) {
	g := NewGallery()
	assert.Equal(t, []string{"All", "Campus", "Labs", "Sports", "Events", "Arts"}, g.Categories())
}

func TestGallery_Filter(t *testing.T) {
	g := NewGallery(
		Image{Src: "a.jpg", Category: "Labs"},
		Image{Src: "b.jpg", Category: "Campus"},
		Image{Src: "c.jpg", Category: "Labs"},
	)
	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "all", category: "All", want: []string{"a.jpg", "b.jpg", "c.jpg"}},
		{name: "empty means all", category: "", want: []string{"a.jpg", "b.jpg", "c.jpg"}},
		{name: "labs keeps order", category: "Labs", want: []string{"a.jpg", "c.jpg"}},
		{name: "campus", category: "Campus", want: []string{"b.jpg"}},
		{name: "unknown", category: "Music", want: []string{}},
		{name: "case sensitive", category: "labs", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcs := make([]string, 0)
			for _, img := range g.Filter(tt.category) {
				srcs = append(srcs, img.Src)
			}
			assert.Equal(t, tt.want, srcs)
		})
	}
}

func TestGallery_Lightbox(t *testing.T) {
	g := NewGallery()

	img, ok := g.Lightbox("Labs", 1)
	assert.True(t, ok)
	assert.Equal(t, "Computer lab with students working", img.Alt)

	img, ok = g.Lightbox("All", 0)
	assert.True(t, ok)
	assert.Equal(t, "Campus", img.Category)

	_, ok = g.Lightbox("Labs", 2)
	assert.False(t, ok)
	_, ok = g.Lightbox("All", -1)
	assert.False(t, ok)
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		path       string
		wantActive string
	}{
		{path: "/", wantActive: "Home"},
		{path: "", wantActive: "Home"},
		{path: "/about", wantActive: "About"},
		{path: "/gallery/2", wantActive: "Gallery"},
		{path: "/contact", wantActive: "Contact"},
		{path: "/contacts", wantActive: ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var active []string
			for _, item := range Navigation(tt.path) {
				if item.Active {
					active = append(active, item.Label)
				}
			}
			if tt.wantActive == "" {
				assert.Empty(t, active)
				return
			}
			assert.Equal(t, []string{tt.wantActive}, active)
		})
	}
}

func TestSchool_WhatsAppURL(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{number: "+91 94936 82828", want: "https://wa.me/919493682828"},
		{number: "1234567890", want: "https://wa.me/1234567890"},
		{number: "", want: ""},
		{number: "n/a", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, School{WhatsAppNumber: tt.number}.WhatsAppURL(), tt.number)
	}
}

func TestNewAdmissionPopup(t *testing.T) {
	conf := core.NewTestConfig()
	p := NewAdmissionPopup(conf)

	assert.True(t, p.Enabled)
	assert.Equal(t, 1500*time.Millisecond, p.Delay)
	assert.Equal(t, int64(1500), p.DelayMillis())
	assert.Equal(t, "2026–27 Academic Year", p.Year)
	assert.Equal(t, "/contact", p.CTAPath)
	assert.Equal(t, "+91 94936 82828", p.Phone)
}
