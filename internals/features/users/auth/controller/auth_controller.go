// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/users/auth/dto"
	"sekolahku_backend/internals/features/users/auth/model"
	service "sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AuthHandler struct {
	DB *gorm.DB
}

func (h *AuthHandler) issueTokens(c *fiber.Ctx, u *model.UserModel, message string, created bool) error {
	access, err := service.IssueAccessToken(u, configs.JWTSecret)
	if err != nil {
		log.Printf("[ERR] sign access token user=%s: %v", u.UserID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	refresh, err := service.IssueRefreshToken(u, configs.JWTRefreshSecret)
	if err != nil {
		log.Printf("[ERR] sign refresh token user=%s: %v", u.UserID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	resp := dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(service.AccessTokenTTL.Seconds()),
		User:         dto.ToUserResponse(*u),
	}
	if created {
		return helper.JsonCreated(c, message, resp)
	}
	return helper.JsonOK(c, message, resp)
}

/* ===============================
   REGISTER + LOGIN (email/password)
=================================*/

// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if errs := helper.ValidateStruct(&in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERR] bcrypt hash: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	hashStr := string(hash)

	u := model.UserModel{
		UserEmail:        strings.ToLower(strings.TrimSpace(in.UserEmail)),
		UserFullName:     strings.TrimSpace(in.UserFullName),
		UserPasswordHash: &hashStr,
		UserRole:         constants.RoleSchoolAdmin,
		UserSchoolID:     in.UserSchoolID,
		UserIsActive:     true,
	}

	if err := h.DB.Create(&u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict, "email sudah terdaftar")
		}
		log.Printf("[ERR] register %s: %v", u.UserEmail, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	log.Printf("✅ user registered: %s", u.UserEmail)
	return h.issueTokens(c, &u, "register success", true)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if errs := helper.ValidateStruct(&in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var u model.UserModel
	err := h.DB.First(&u, "user_email = ?", strings.ToLower(strings.TrimSpace(in.UserEmail))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusUnauthorized, "email atau password salah")
		}
		log.Printf("[ERR] login lookup: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	if !u.UserIsActive {
		return helper.JsonError(c, http.StatusForbidden, "akun dinonaktifkan")
	}
	if u.UserPasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*u.UserPasswordHash), []byte(in.UserPassword)) != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "email atau password salah")
	}

	return h.issueTokens(c, &u, "login success", false)
}

/* ===============================
   GOOGLE SIGN-IN
=================================*/

// POST /api/auth/login/google
// Verifikasi id_token, auto-provision akun saat pertama kali.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	var in dto.GoogleLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if errs := helper.ValidateStruct(&in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	profile, err := service.VerifyGoogleIDToken(in.IDToken, configs.GoogleClientID)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var u model.UserModel
	err = h.DB.First(&u, "user_google_sub = ?", profile.Sub).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// akun google baru, link via email jika sudah ada
		err = h.DB.First(&u, "user_email = ?", strings.ToLower(profile.Email)).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			u = model.UserModel{
				UserEmail:    strings.ToLower(profile.Email),
				UserFullName: profile.FullName,
				UserRole:     constants.RoleSchoolAdmin,
				UserIsActive: true,
			}
		} else if err != nil {
			log.Printf("[ERR] google login lookup: %v", err)
			return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
		}
		u.UserGoogleSub = &profile.Sub
		if err := h.DB.Save(&u).Error; err != nil {
			log.Printf("[ERR] google login provision: %v", err)
			return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
		}
	case err != nil:
		log.Printf("[ERR] google login lookup: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}

	if !u.UserIsActive {
		return helper.JsonError(c, http.StatusForbidden, "akun dinonaktifkan")
	}
	return h.issueTokens(c, &u, "login success", false)
}

/* ===============================
   REFRESH + ME
=================================*/

// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if errs := helper.ValidateStruct(&in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	sub, err := service.ParseRefreshToken(in.RefreshToken, configs.JWTRefreshSecret)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "refresh token tidak valid")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "refresh token tidak valid")
	}

	var u model.UserModel
	if err := h.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "refresh token tidak valid")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, http.StatusForbidden, "akun dinonaktifkan")
	}
	return h.issueTokens(c, &u, "token refreshed", false)
}

// GET /api/auth/me (di belakang AuthJWT)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var u model.UserModel
	if err := h.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		log.Printf("[ERR] me lookup user=%s: %v", userID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal server error")
	}
	return helper.JsonOK(c, "me", dto.ToUserResponse(u))
}
