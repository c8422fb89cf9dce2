package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tourstravels_backend/internals/constants"
	dto "tourstravels_backend/internals/features/packages/dto"
	"tourstravels_backend/internals/features/packages/service"
	helper "tourstravels_backend/internals/helpers"
	authhelper "tourstravels_backend/internals/helpers/auth"
	"tourstravels_backend/internals/helpers/upload"
)

// PackageController serves all three roles; each route group maps onto
// the same service with a different Principal.
type PackageController struct {
	Service *service.PackageService
}

func NewPackageController(svc *service.PackageService) *PackageController {
	return &PackageController{Service: svc}
}

/* ======================= AGENT ======================= */

// POST /api/agent/packages
func (h *PackageController) Create(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}

	p, err := h.Service.Create(c.UserContext(), actor, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Package created, awaiting approval", dto.FromPackageModel(*p))
}

// PUT /api/agent/packages/:id — any edit resets the package to PENDING.
func (h *PackageController) Update(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid package ID")
	}

	var req dto.UpdatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}

	p, err := h.Service.Update(c.UserContext(), actor, packageID, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Package updated, re-approval required", dto.FromPackageModel(*p))
}

// DELETE /api/agent/packages/:id
func (h *PackageController) Delete(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid package ID")
	}

	if err := h.Service.Delete(c.UserContext(), actor, packageID); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Package deleted successfully", fiber.Map{"id": packageID})
}

// GET /api/agent/packages
func (h *PackageController) MyPackages(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	list, err := h.Service.ListByAgent(c.UserContext(), actor.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromPackageModels(list))
}

// POST /api/agent/packages/:id/images — multipart upload, max 5 files.
func (h *PackageController) UploadImages(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid package ID")
	}

	urls, err := upload.SavePackageImages(c, "images")
	if err != nil {
		return err
	}

	p, err := h.Service.AttachImageURLs(c.UserContext(), actor, packageID, urls)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Images uploaded", dto.FromPackageModel(*p))
}

// POST /api/agent/packages/:id/image-urls — pre-hosted URLs.
func (h *PackageController) AddImageURLs(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid package ID")
	}

	var req dto.AddImageURLsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}

	p, err := h.Service.AttachImageURLs(c.UserContext(), actor, packageID, req.ImageURLs)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Image URLs added", dto.FromPackageModel(*p))
}

/* ======================= ADMIN ======================= */

// GET /api/admin/packages/pending
func (h *PackageController) ListPending(c *fiber.Ctx) error {
	list, err := h.Service.ListPending(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromPackageModels(list))
}

// PUT /api/admin/packages/approve/:id
func (h *PackageController) Approve(c *fiber.Ctx) error {
	return h.decide(c, constants.DecisionApprove)
}

// PUT /api/admin/packages/reject/:id
func (h *PackageController) Reject(c *fiber.Ctx) error {
	return h.decide(c, constants.DecisionReject)
}

func (h *PackageController) decide(c *fiber.Ctx, decision string) error {
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid package ID")
	}
	p, err := h.Service.Decide(c.UserContext(), packageID, decision)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Package "+p.PackageStatus, dto.FromPackageModel(*p))
}

/* ======================= PUBLIC / CUSTOMER ======================= */

// GET /api/packages and /api/customer/packages
func (h *PackageController) ListApproved(c *fiber.Ctx) error {
	list, err := h.Service.ListApproved(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromPackageModels(list))
}
