// file: internals/features/finance/invoices/controller/invoice_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/invoices/dto"
	invoiceModel "sekolahku_backend/internals/features/finance/invoices/model"
	service "sekolahku_backend/internals/features/finance/invoices/service"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* =======================================================
   BOOTSTRAP & HELPERS
======================================================= */

type InvoiceHandler struct {
	DB *gorm.DB
}

func (h *InvoiceHandler) schoolCurrency(schoolID uuid.UUID) string {
	var school schoolModel.SchoolModel
	if err := h.DB.Select("school_currency").
		First(&school, "school_id = ?", schoolID).Error; err != nil {
		return "IDR"
	}
	return school.SchoolCurrency
}

func (h *InvoiceHandler) studentProjection(schoolID, studentID uuid.UUID) *dto.StudentProjection {
	var s studentModel.StudentModel
	if err := h.DB.Select("student_id, student_nis, student_full_name").
		First(&s, "student_id = ? AND student_school_id = ?", studentID, schoolID).Error; err != nil {
		return nil
	}
	return &dto.StudentProjection{
		StudentID:       s.StudentID,
		StudentNIS:      s.StudentNIS,
		StudentFullName: s.StudentFullName,
	}
}

/* =======================================================
   CREATE — alur: validasi → cek referensi → hitung total
   → generate nomor → tulis transaksional
======================================================= */

// POST /:school_id/finance/invoices
func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	var in dto.InvoiceCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}

	// 1) Validasi murni — semua pelanggaran sekaligus
	input, fieldErrs := service.ValidateCreate(&in)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// 2..4) Referensi + nomor + tulis: satu transaksi di service
	inv, err := service.CreateInvoice(h.DB, schoolID, input, time.Now())
	if err != nil {
		var refErr *service.RefNotFoundError
		switch {
		case errors.As(err, &refErr):
			return helper.JsonError(c, http.StatusNotFound, refErr.Error())
		case helper.IsUniqueViolation(err):
			return helper.JsonError(c, http.StatusConflict, "nomor invoice bentrok, silakan coba lagi")
		case helper.IsForeignKeyViolation(err):
			return helper.JsonError(c, http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		default:
			log.Printf("[ERR] create invoice school=%s: %v", schoolID, err)
			return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
		}
	}

	student := h.studentProjection(schoolID, inv.InvoiceStudentID)
	resp := dto.ToInvoiceResponse(*inv, student, h.schoolCurrency(schoolID))
	return helper.JsonCreated(c, "invoice created", resp)
}

/* =======================================================
   LIST — semua invoice tenant, issue date desc, paginated
======================================================= */

// statusFilterClause menerjemahkan ?status= ke kondisi storage.
// OVERDUE tidak pernah disimpan (diturunkan saat baca), jadi filternya
// = status yang masih bisa telat + due date sudah lewat.
func statusFilterClause(status string, now time.Time) (string, []any) {
	if status == string(invoiceModel.InvoiceStatusOverdue) {
		return "invoice_status IN ? AND invoice_due_date < ?", []any{
			[]invoiceModel.InvoiceStatus{
				invoiceModel.InvoiceStatusPending,
				invoiceModel.InvoiceStatusPartiallyPaid,
			},
			now.Format("2006-01-02"),
		}
	}
	return "invoice_status = ?", []any{status}
}

// GET /:school_id/finance/invoices
func (h *InvoiceHandler) ListInvoices(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&invoiceModel.InvoiceModel{}).
		Where("invoice_school_id = ?", schoolID)

	// filter opsional
	if st := c.Query("status"); st != "" {
		cond, args := statusFilterClause(st, time.Now())
		q = q.Where(cond, args...)
	}
	if sid := c.Query("student_id"); sid != "" {
		if id, err := uuid.Parse(sid); err == nil {
			q = q.Where("invoice_student_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERR] count invoices school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	var list []invoiceModel.InvoiceModel
	if err := q.Preload("InvoiceLineItems").
		Order("invoice_issue_date DESC, invoice_number DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		log.Printf("[ERR] list invoices school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	// proyeksi siswa sekali query untuk seluruh halaman
	students, err := h.studentProjections(schoolID, list)
	if err != nil {
		log.Printf("[ERR] student projections school=%s: %v", schoolID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	resp := dto.ToInvoiceResponses(list, students, h.schoolCurrency(schoolID))
	return helper.JsonList(c, "invoices", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (h *InvoiceHandler) studentProjections(schoolID uuid.UUID, list []invoiceModel.InvoiceModel) (map[uuid.UUID]dto.StudentProjection, error) {
	ids := make([]uuid.UUID, 0, len(list))
	seen := map[uuid.UUID]struct{}{}
	for _, m := range list {
		if _, ok := seen[m.InvoiceStudentID]; !ok {
			seen[m.InvoiceStudentID] = struct{}{}
			ids = append(ids, m.InvoiceStudentID)
		}
	}
	out := make(map[uuid.UUID]dto.StudentProjection, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []studentModel.StudentModel
	if err := h.DB.Select("student_id, student_nis, student_full_name").
		Where("student_id IN ? AND student_school_id = ?", ids, schoolID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, s := range rows {
		out[s.StudentID] = dto.StudentProjection{
			StudentID:       s.StudentID,
			StudentNIS:      s.StudentNIS,
			StudentFullName: s.StudentFullName,
		}
	}
	return out, nil
}

/* =======================================================
   DETAIL
======================================================= */

// GET /:school_id/finance/invoices/:id
func (h *InvoiceHandler) GetInvoiceByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ParseSchoolIDFromPath(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid school_id")
	}
	if err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var inv invoiceModel.InvoiceModel
	if err := h.DB.Preload("InvoiceLineItems").
		First(&inv, "invoice_id = ? AND invoice_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "invoice not found")
		}
		log.Printf("[ERR] get invoice school=%s id=%s: %v", schoolID, id, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	student := h.studentProjection(schoolID, inv.InvoiceStudentID)
	return helper.JsonOK(c, "invoice", dto.ToInvoiceResponse(inv, student, h.schoolCurrency(schoolID)))
}
