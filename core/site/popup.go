package site

import (
	"time"

	"github.com/Arlahanmanthrao1/school/core"
)

// AdmissionPopup is the "Admissions Open!" card shown shortly after a page loads.
type AdmissionPopup struct {
	Enabled  bool
	Delay    time.Duration
	Title    string
	Year     string
	Text     string
	Phone    string
	CTALabel string
	CTAPath  string
}

func NewAdmissionPopup(conf *core.Config) AdmissionPopup {
	return AdmissionPopup{
		Enabled:  conf.Popup.Enabled,
		Delay:    conf.Popup.Delay,
		Title:    "Admissions Open!",
		Year:     conf.School.AcademicYear + " Academic Year",
		Text:     "Enroll now to secure your child's future at " + conf.School.Name + ".",
		Phone:    conf.School.Phone,
		CTALabel: "Apply Now",
		CTAPath:  "/contact",
	}
}

// DelayMillis is the delay as used by the page script.
func (p AdmissionPopup) DelayMillis() int64 {
	return p.Delay.Milliseconds()
}
