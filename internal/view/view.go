package view

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/pagination"
)

//go:embed templates/staff.html.tmpl
var staffTemplate string

// StaffPage is the view model handed to the renderer: the records to show,
// the pagination state, and whether the create form is visible.
type StaffPage struct {
	Staff      []domain.Staff
	Pagination pagination.State
	ShowForm   bool
}

// NewStaffPage assembles the view model for one read request.
func NewStaffPage(staff []domain.Staff, state pagination.State, showForm bool) StaffPage {
	return StaffPage{Staff: staff, Pagination: state, ShowForm: showForm}
}

// Renderer turns a StaffPage into HTML markup.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded staff template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("staff").Parse(staffTemplate)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template against the given page.
func (r *Renderer) Render(page StaffPage) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
