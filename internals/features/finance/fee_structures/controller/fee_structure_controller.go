// file: internals/features/finance/fee_structures/controller/fee_structure_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fee_structures/dto"
	"sekolahku_backend/internals/features/finance/fee_structures/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type FeeStructureHandler struct {
	DB *gorm.DB
}

var academicYearRe = regexp.MustCompile(`^\d{4}-\d{4}$`)

// tahun ajaran harus "YYYY-YYYY" dan berurutan (2024-2025).
func checkAcademicYear(year string, errs map[string][]string) {
	if !academicYearRe.MatchString(year) {
		errs["fee_structure_academic_year"] = append(errs["fee_structure_academic_year"],
			"format tahun ajaran harus YYYY-YYYY")
		return
	}
	parts := strings.SplitN(year, "-", 2)
	a, _ := strconv.Atoi(parts[0])
	b, _ := strconv.Atoi(parts[1])
	if b != a+1 {
		errs["fee_structure_academic_year"] = append(errs["fee_structure_academic_year"],
			fmt.Sprintf("tahun ajaran harus berurutan (mis. %d-%d)", a, a+1))
	}
}

func checkAmount(amount decimal.Decimal, errs map[string][]string) {
	if amount.Sign() <= 0 {
		errs["fee_structure_amount"] = append(errs["fee_structure_amount"], "nominal harus lebih dari 0")
	}
}

/* ===============================
   CREATE
=================================*/

// POST /:school_id/finance/fee-structures
func (h *FeeStructureHandler) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	var in dto.FeeStructureCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}

	errs := helper.ValidateStruct(&in)
	if errs == nil {
		errs = map[string][]string{}
	}
	checkAcademicYear(in.FeeStructureAcademicYear, errs)
	checkAmount(in.FeeStructureAmount, errs)
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	m := model.FeeStructureModel{
		FeeStructureSchoolID:     schoolID,
		FeeStructureName:         strings.TrimSpace(in.FeeStructureName),
		FeeStructureDescription:  in.FeeStructureDescription,
		FeeStructureAmount:       helper.FixedAmount(in.FeeStructureAmount),
		FeeStructureAcademicYear: in.FeeStructureAcademicYear,
		FeeStructureTerm:         in.FeeStructureTerm,
		FeeStructureFrequency:    in.FeeStructureFrequency,
		FeeStructureMetadata:     in.FeeStructureMetadata,
	}
	if m.FeeStructureFrequency == "" {
		m.FeeStructureFrequency = "monthly"
	}

	if err := h.DB.Create(&m).Error; err != nil {
		log.Printf("[ERR] create fee structure school=%s: %v", schoolID, err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "fee structure created", dto.ToFeeStructureResponse(m))
}

/* ===============================
   LIST + DETAIL
=================================*/

// GET /:school_id/finance/fee-structures
func (h *FeeStructureHandler) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.FeeStructureModel{}).
		Where("fee_structure_school_id = ?", schoolID)
	if y := c.Query("academic_year"); y != "" {
		q = q.Where("fee_structure_academic_year = ?", y)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERR] count fee structures school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	var list []model.FeeStructureModel
	if err := q.Order("fee_structure_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		log.Printf("[ERR] list fee structures school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	return helper.JsonList(c, "fee structures", dto.ToFeeStructureResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /:school_id/finance/fee-structures/:id
func (h *FeeStructureHandler) GetByID(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "fee structure", dto.ToFeeStructureResponse(*m))
}

func (h *FeeStructureHandler) find(c *fiber.Ctx, schoolID uuid.UUID) (*model.FeeStructureModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m model.FeeStructureModel
	if err := h.DB.
		First(&m, "fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, http.StatusNotFound, "fee structure not found")
		}
		log.Printf("[ERR] get fee structure school=%s id=%s: %v", schoolID, id, err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return &m, nil
}

/* ===============================
   UPDATE (partial) + DELETE (soft)
=================================*/

// PATCH /:school_id/finance/fee-structures/:id
func (h *FeeStructureHandler) Update(c *fiber.Ctx) error {
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

	var in dto.FeeStructureUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}

	errs := helper.ValidateStruct(&in)
	if errs == nil {
		errs = map[string][]string{}
	}
	if in.FeeStructureAcademicYear != nil {
		checkAcademicYear(*in.FeeStructureAcademicYear, errs)
	}
	if in.FeeStructureAmount != nil {
		checkAmount(*in.FeeStructureAmount, errs)
	}
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	in.Apply(m)
	if err := h.DB.Save(m).Error; err != nil {
		log.Printf("[ERR] update fee structure school=%s: %v", schoolID, err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "fee structure updated", dto.ToFeeStructureResponse(*m))
}

// DELETE /:school_id/finance/fee-structures/:id
// Soft delete; line item lama tetap utuh (FK SET NULL).
func (h *FeeStructureHandler) Delete(c *fiber.Ctx) error {
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

	if err := h.DB.Delete(m).Error; err != nil {
		log.Printf("[ERR] delete fee structure school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return helper.JsonDeleted(c, "fee structure deleted", fiber.Map{"fee_structure_id": m.FeeStructureID})
}
