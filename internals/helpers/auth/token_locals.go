// file: internals/helpers/auth/token_locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Locals Keys (middleware set these)
   ============================================ */

const (
	LocUserID   = "user_id"   // string UUID
	LocRole     = "role"      // "owner" | "school_admin"
	LocSchoolID = "school_id" // string UUID; kosong = tidak terasosiasi tenant
)

func parseUUIDFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}
	switch t := v.(type) {
	case string:
		id, err := uuid.Parse(strings.TrimSpace(t))
		if err != nil || id == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak valid di token")
		}
		return id, nil
	case uuid.UUID:
		if t != uuid.Nil {
			return t, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak valid di token")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return parseUUIDFromLocals(c, LocUserID)
}

func GetRole(c *fiber.Ctx) string {
	if v := c.Locals(LocRole); v != nil {
		if s, ok := v.(string); ok {
			return strings.ToLower(strings.TrimSpace(s))
		}
	}
	return ""
}

func IsOwner(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleOwner }

/* ============================================
   Tenant resolver
   ============================================ */

// GetSchoolIDFromToken: satu-satunya mekanisme otorisasi tenant —
// semua read/write di-scope ke school_id hasil resolve ini.
// Principal tanpa tenant → 403 (NotAssociated).
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := parseUUIDFromLocals(c, LocSchoolID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun tidak terasosiasi dengan sekolah manapun")
	}
	return id, nil
}

// EnsureSchoolAdmin: principal harus admin pada sekolah tsb (atau owner global).
// Cek-nya flat: school_id token == school_id baris/path — tidak ada hierarki lain.
func EnsureSchoolAdmin(c *fiber.Ctx, schoolID uuid.UUID) error {
	if schoolID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_id wajib")
	}
	if IsOwner(c) {
		return nil
	}
	tokenSchoolID, err := GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if tokenSchoolID != schoolID {
		return helper.JsonError(c, fiber.StatusForbidden, "School ini tidak ada dalam token Anda")
	}
	if GetRole(c) != constants.RoleSchoolAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin sekolah yang diizinkan")
	}
	return nil
}

// ParseSchoolIDFromPath: ambil school_id dari path param.
func ParseSchoolIDFromPath(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("school_id")))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "school_id path tidak valid")
	}
	return id, nil
}
