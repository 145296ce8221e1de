// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"careportal_backend/internals/configs"
	"careportal_backend/internals/constants"
	authDTO "careportal_backend/internals/features/users/auth/dto"
	authModel "careportal_backend/internals/features/users/auth/model"
	helper "careportal_backend/internals/helpers"
)

const accessTokenTTL = 12 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/auth/register (admin only, behind OnlyRoles)
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	role := req.Role
	if role == "" {
		role = constants.RoleStaff
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := authModel.StaffUserModel{
		StaffUserEmail:        strings.ToLower(strings.TrimSpace(req.Email)),
		StaffUserFullName:     strings.TrimSpace(req.FullName),
		StaffUserPasswordHash: string(hash),
		StaffUserRole:         role,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "staff registered", toUserResponse(&user))
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user authModel.StaffUserModel
	err := ctl.DB.WithContext(c.Context()).
		First(&user, "staff_user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if bcrypt.CompareHashAndPassword([]byte(user.StaffUserPasswordHash), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.StaffUserID.String(),
		"user_id": user.StaffUserID.String(),
		"role":    user.StaffUserRole,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})

	return helper.JsonOK(c, "login success", authDTO.LoginResponse{
		AccessToken: token,
		User:        toUserResponse(&user),
	})
}

// POST /api/auth/logout
// Blacklists the presented token until its exp so the cookie cannot be replayed.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("raw_token").(string)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not logged in")
	}

	expiredAt := time.Now().Add(accessTokenTTL)
	if claims, ok := c.Locals("jwt_claims").(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklist{Token: raw, ExpiredAt: expiredAt}
	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil && !helper.IsDuplicateKey(err) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})

	return helper.JsonOK(c, "logout success", nil)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user authModel.StaffUserModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&user, "staff_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", toUserResponse(&user))
}

// IsTokenBlacklisted is plugged into the JWT middleware.
func IsTokenBlacklisted(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var count int64
		err := db.Model(&authModel.TokenBlacklist{}).
			Where("token = ?", rawToken).
			Count(&count).Error
		return count > 0, err
	}
}

func toUserResponse(u *authModel.StaffUserModel) authDTO.UserResponse {
	return authDTO.UserResponse{
		ID:       u.StaffUserID.String(),
		Email:    u.StaffUserEmail,
		FullName: u.StaffUserFullName,
		Role:     u.StaffUserRole,
	}
}
