package view

import (
	"strings"
	"testing"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/pagination"
)

func strPtr(s string) *string { return &s }

func TestRenderListing(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	page := NewStaffPage([]domain.Staff{
		{StaffID: 7, FirstName: strPtr("Ana"), LastName: strPtr("Lee"), Email: strPtr("a@x.com"), Username: strPtr("ana")},
		{StaffID: 8, Username: strPtr("bob")},
	}, pagination.NewState(2), false)

	body, err := renderer.Render(page)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{"Ana", "Lee", "a@x.com", "staff_id=7", "bob", "Page 2", "page=3", "page=1"} {
		if !strings.Contains(body, want) {
			t.Fatalf("rendered body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "<form") {
		t.Fatalf("form rendered without ShowForm")
	}
}

func TestRenderFirstPageHidesPrevious(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	body, err := renderer.Render(NewStaffPage(nil, pagination.NewState(0), false))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(body, "Previous") {
		t.Fatalf("previous link rendered on first page:\n%s", body)
	}
	if !strings.Contains(body, "page=1") {
		t.Fatalf("next link missing on first page:\n%s", body)
	}
}

func TestRenderCreateForm(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	body, err := renderer.Render(NewStaffPage(nil, pagination.NewState(0), true))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{"<form", `action="/staff"`, `name="first_name"`, `name="password"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("create form missing %q:\n%s", want, body)
		}
	}
}

func TestRenderEscapesFieldValues(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	body, err := renderer.Render(NewStaffPage([]domain.Staff{
		{StaffID: 1, FirstName: strPtr("<script>alert(1)</script>")},
	}, pagination.NewState(0), false))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Fatalf("field value not escaped:\n%s", body)
	}
}
