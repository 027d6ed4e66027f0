// internals/features/users/auth/controller/auth_controller.go
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

	"franquiaedu_backend/internals/configs"
	"franquiaedu_backend/internals/constants"
	authDTO "franquiaedu_backend/internals/features/users/auth/dto"
	userModel "franquiaedu_backend/internals/features/users/user/model"
	helper "franquiaedu_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

const accessTokenTTL = 12 * time.Hour

// POST /auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.DB.Model(&userModel.UserModel{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao validar e-mail")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "E-mail já cadastrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gerar hash de senha")
	}

	m := &userModel.UserModel{
		UserName: req.UserName,
		Email:    email,
		Password: string(hash),
		Role:     constants.RoleAluno,
	}
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar usuário")
	}

	token, err := h.issueToken(m)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao emitir token")
	}

	return helper.JsonCreated(c, "Usuário cadastrado", authDTO.AuthResponse{
		AccessToken: token,
		User:        authDTO.NewUserResponse(m),
	})
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var m userModel.UserModel
	if err := h.DB.First(&m, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	token, err := h.issueToken(&m)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao emitir token")
	}

	return helper.JsonOK(c, "Login realizado", authDTO.AuthResponse{
		AccessToken: token,
		User:        authDTO.NewUserResponse(&m),
	})
}

func (h *AuthController) issueToken(m *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   m.ID.String(),
		"role": m.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}
