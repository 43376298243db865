// file: internals/helpers/validator.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func Validate() *validator.Validate { return validate }

// ValidateStruct menjalankan tag validasi & mengembalikan map field → pesan.
// Nil kalau lolos. Semua pelanggaran dikumpulkan sekaligus (bukan fail-fast).
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string][]string, len(ve))
			for _, fe := range ve {
				f := fieldKeyFromNamespace(fe.Namespace())
				out[f] = append(out[f], messageForTag(fe))
			}
			return out
		}
		return map[string][]string{"_": {"invalid input"}}
	}
	return nil
}

// "InvoiceCreateRequest.LineItems[0].Quantity" → "line_items[0].quantity"
func fieldKeyFromNamespace(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:] // buang nama struct root
	}
	for i, p := range parts {
		parts[i] = snakeCase(p)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "min":
		return "minimal " + fe.Param()
	case "max":
		return "maksimal " + fe.Param()
	case "gt":
		return "harus lebih besar dari " + fe.Param()
	case "email":
		return "format email tidak valid"
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "uuid":
		return "harus UUID valid"
	default:
		return "tidak valid (" + fe.Tag() + ")"
	}
}
