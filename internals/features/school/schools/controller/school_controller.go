// file: internals/features/school/schools/controller/school_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/schools/dto"
	"sekolahku_backend/internals/features/school/schools/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SchoolHandler struct {
	DB *gorm.DB
}

func (h *SchoolHandler) find(c *fiber.Ctx, schoolID uuid.UUID) (*model.SchoolModel, error) {
	var m model.SchoolModel
	if err := h.DB.First(&m, "school_id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, http.StatusNotFound, "school not found")
		}
		log.Printf("[ERR] get school %s: %v", schoolID, err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return &m, nil
}

/* ===============================
   PROFILE
=================================*/

// GET /:school_id/profile
func (h *SchoolHandler) GetProfile(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	m, err := h.find(c, schoolID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "school profile", dto.ToSchoolResponse(*m))
}

// PATCH /:school_id/profile
func (h *SchoolHandler) UpdateProfile(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	m, err := h.find(c, schoolID)
	if err != nil {
		return err
	}

	var in dto.SchoolUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if errs := helper.ValidateStruct(&in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	in.Apply(m)
	if err := h.DB.Save(m).Error; err != nil {
		log.Printf("[ERR] update school %s: %v", schoolID, err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "school updated", dto.ToSchoolResponse(*m))
}

/* ===============================
   LOGO (upload multipart → webp)
=================================*/

// POST /:school_id/profile/logo
func (h *SchoolHandler) UploadLogo(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	m, err := h.find(c, schoolID)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "field 'logo' wajib berupa file")
	}

	webpBytes, err := helper.ConvertImageToWebP(fileHeader, 512, 512)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	m.SchoolLogoWebP = webpBytes
	if err := h.DB.Save(m).Error; err != nil {
		log.Printf("[ERR] upload logo school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return helper.JsonUpdated(c, "logo updated", fiber.Map{
		"school_id":  m.SchoolID,
		"size_bytes": len(webpBytes),
	})
}

// GET /:school_id/profile/logo
func (h *SchoolHandler) GetLogo(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	m, err := h.find(c, schoolID)
	if err != nil {
		return err
	}
	if len(m.SchoolLogoWebP) == 0 {
		return helper.JsonError(c, http.StatusNotFound, "school has no logo")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	return c.Send(m.SchoolLogoWebP)
}
