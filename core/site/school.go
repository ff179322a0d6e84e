// Package site holds the content of the school's public pages.
package site

import (
	"strings"
	"unicode"

	"github.com/Arlahanmanthrao1/school/core"
)

type School struct {
	Name           string
	Tagline        string
	Address        string
	Phone          string
	Email          string
	OfficeHours    string
	WhatsAppNumber string
	AcademicYear   string
	Founded        int
}

func NewSchool(conf *core.Config) School {
	return School(conf.School)
}

// WhatsAppURL returns the wa.me chat link for the configured number, or "" without one.
func (s School) WhatsAppURL() string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s.WhatsAppNumber)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}

// TelURL returns the tel: link for the school's phone.
func (s School) TelURL() string {
	return "tel:" + strings.ReplaceAll(s.Phone, " ", "")
}
