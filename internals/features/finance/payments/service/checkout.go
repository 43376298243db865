// file: internals/features/finance/payments/service/checkout.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	invoiceModel "sekolahku_backend/internals/features/finance/invoices/model"
	dto "sekolahku_backend/internals/features/finance/payments/dto"
	"sekolahku_backend/internals/features/finance/payments/model"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

// CreateCheckout membuat payment pending sebesar SISA tagihan lalu minta
// snap token ke midtrans. Order ID = payment_id supaya webhook bisa
// langsung lookup.
func CreateCheckout(db *gorm.DB, schoolID, invoiceID uuid.UUID) (*dto.CheckoutResponse, error) {
	var out *dto.CheckoutResponse

	err := db.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(tx, schoolID, invoiceID)
		if err != nil {
			return err
		}
		switch inv.InvoiceStatus {
		case invoiceModel.InvoiceStatusPending, invoiceModel.InvoiceStatusPartiallyPaid:
		default:
			return fmt.Errorf("%w (status=%s)", ErrInvoiceNotPayable, inv.InvoiceStatus)
		}

		remaining := helper.FixedAmount(inv.InvoiceTotalAmount.Sub(inv.InvoicePaidAmount))
		if remaining.Sign() <= 0 {
			return ErrInvoiceNotPayable
		}

		var student studentModel.StudentModel
		if err := tx.Select("student_full_name").
			First(&student, "student_id = ?", inv.InvoiceStudentID).Error; err != nil {
			return err
		}
		var school schoolModel.SchoolModel
		if err := tx.Select("school_email").
			First(&school, "school_id = ?", schoolID).Error; err != nil {
			return err
		}
		email := ""
		if school.SchoolEmail != nil {
			email = *school.SchoolEmail
		}

		paymentID := uuid.New()
		orderID := paymentID.String()

		// IDR tidak punya pecahan; gateway menerima rupiah utuh
		gross := remaining.Round(0).IntPart()
		token, redirectURL, err := CreateSnapTransaction(SnapCheckout{
			OrderID:       orderID,
			GrossAmount:   gross,
			CustomerName:  student.StudentFullName,
			CustomerEmail: email,
		})
		if err != nil {
			return err
		}

		payment := model.PaymentModel{
			PaymentID:         paymentID,
			PaymentSchoolID:   schoolID,
			PaymentInvoiceID:  inv.InvoiceID,
			PaymentAmount:     remaining,
			PaymentMethod:     model.PaymentMethodMidtrans,
			PaymentStatus:     model.PaymentStatusPending,
			PaymentExternalID: &orderID,
			PaymentSnapToken:  &token,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		out = &dto.CheckoutResponse{
			PaymentID:   paymentID,
			OrderID:     orderID,
			SnapToken:   token,
			RedirectURL: redirectURL,
			GrossAmount: helper.FormatAmount(remaining),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
