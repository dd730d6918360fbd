package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/api/dto"
	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/pagination"
	"github.com/spec-kit/staff-service/internal/repository"
	"github.com/spec-kit/staff-service/internal/view"
	"github.com/spec-kit/staff-service/pkg/util"
)

// StaffHandler exposes the staff resource.
type StaffHandler struct {
	repo     repository.StaffRepository
	renderer *view.Renderer
	logger   *zap.Logger
}

// NewStaffHandler constructs handler.
func NewStaffHandler(repo repository.StaffRepository, renderer *view.Renderer, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{repo: repo, renderer: renderer, logger: logger}
}

// Browse handles GET /staff: a single lookup when staff_id is given,
// otherwise a paginated listing, rendered as HTML.
func (h *StaffHandler) Browse(c *fiber.Ctx) error {
	page := pagination.ResolvePage(c.Query("page"))
	showForm := c.Query("new") == "t"

	var records []domain.Staff
	if raw := c.Query("staff_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return util.NewPayloadInvalid("staff_id must be an integer", map[string]any{"staff_id": raw})
		}
		h.logger.Info("staff lookup", zap.Int64("staff_id", id))
		record, err := h.repo.GetByID(c.UserContext(), id)
		if err != nil {
			return err
		}
		records = []domain.Staff{*record}
	} else {
		offset := pagination.Offset(page)
		h.logger.Info("staff listing", zap.Int("offset", offset))
		var err error
		records, err = h.repo.ListPage(c.UserContext(), offset)
		if err != nil {
			return err
		}
	}

	body, err := h.renderer.Render(view.NewStaffPage(records, pagination.NewState(page), showForm))
	if err != nil {
		return err
	}

	c.Type("html")
	return c.SendString(body)
}

// Create handles POST /staff: inserts one staff member and redirects back to
// the listing.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewPayloadInvalid("invalid staff payload", nil)
	}

	id, err := h.repo.Insert(c.UserContext(), repository.CreateStaffParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	h.logger.Info("staff created", zap.Int64("generated_key", id))

	c.Set(fiber.HeaderLocation, "/staff")
	return c.Status(fiber.StatusSeeOther).SendString("")
}
