// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/students/dto"
	"sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentHandler struct {
	DB *gorm.DB
}

/* ===============================
   CREATE
=================================*/

// POST /:school_id/students
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	var in dto.StudentCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if errs := helper.ValidateStruct(&in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m := model.StudentModel{
		StudentSchoolID:   schoolID,
		StudentNIS:        strings.TrimSpace(in.StudentNIS),
		StudentFullName:   strings.TrimSpace(in.StudentFullName),
		StudentGradeLabel: in.StudentGradeLabel,
		StudentIsActive:   true,
	}

	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict, "NIS sudah terdaftar di sekolah ini")
		}
		log.Printf("[ERR] create student school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(m))
}

/* ===============================
   LIST + DETAIL
=================================*/

// GET /:school_id/students
func (h *StudentHandler) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		q = q.Where("student_full_name ILIKE ? OR student_nis ILIKE ?", like, like)
	}
	if c.Query("active") == "true" {
		q = q.Where("student_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERR] count students school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	var list []model.StudentModel
	if err := q.Order("student_full_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		log.Printf("[ERR] list students school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	return helper.JsonList(c, "students", dto.ToStudentResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /:school_id/students/:id
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "student", dto.ToStudentResponse(*m))
}

func (h *StudentHandler) find(c *fiber.Ctx, schoolID uuid.UUID) (*model.StudentModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m model.StudentModel
	if err := h.DB.
		First(&m, "student_id = ? AND student_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		log.Printf("[ERR] get student school=%s id=%s: %v", schoolID, id, err)
		return nil, helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return &m, nil
}

/* ===============================
   UPDATE (partial) + DELETE (soft)
=================================*/

// PATCH /:school_id/students/:id
func (h *StudentHandler) Update(c *fiber.Ctx) error {
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

	var in dto.StudentUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if errs := helper.ValidateStruct(&in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	in.Apply(m)
	if err := h.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict, "NIS sudah terdaftar di sekolah ini")
		}
		log.Printf("[ERR] update student school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(*m))
}

// DELETE /:school_id/students/:id
// Soft delete; invoice milik siswa tetap ada untuk histori keuangan.
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
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
		log.Printf("[ERR] delete student school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": m.StudentID})
}
