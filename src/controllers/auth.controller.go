package controllers

import (
	"cafe/src/db"
	"cafe/src/lib"
	"cafe/src/models"
	"cafe/src/types"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func issueToken(user *models.User) (*AuthResult, int, error) {
	token, _, err := lib.GenerateJWT(user, time.Now())
	if err != nil {
		log.Printf("Error signing token for user [%d]: %s\n", user.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return &AuthResult{User: user, Token: token}, http.StatusOK, nil
}

func AuthSignup(ctx *gin.Context, body *types.SignupRequestBody) (result *AuthResult, status int, err error) {
	hash, err := lib.HashPassword(body.Password)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	user := models.User{
		Name:     body.Name,
		Email:    strings.ToLower(body.Email),
		Phone:    body.Phone,
		Password: hash,
	}
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.Where("name = ?", body.RoleName).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewValidationError("role_name", "The selected role name is invalid.")
			}
			return err
		}
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.NewValidationError("email", "The email has already been taken.")
		}
		user.RoleID = role.ID
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return types.NewValidationError("email", "The email has already been taken.")
			}
			return err
		}
		user.Role = &role
		return nil
	})
	if err != nil {
		var verr types.ValidationErrors
		if errors.As(err, &verr) {
			return nil, http.StatusUnprocessableEntity, err
		}
		log.Printf("Error registering user: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return issueToken(&user)
}

func AuthLogin(ctx *gin.Context, body *types.LoginRequestBody) (result *AuthResult, status int, err error) {
	db := db.GetDb()
	var user models.User
	if err = db.
		Model(&models.User{}).
		Preload("Role").
		Where("email = ?", strings.ToLower(body.Email)).
		First(&user).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusUnprocessableEntity, types.ErrInvalidCredentials
		}
		log.Printf("error: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	if !lib.CheckPassword(user.Password, body.Password) {
		return nil, http.StatusUnprocessableEntity, types.ErrInvalidCredentials
	}
	return issueToken(&user)
}

// AuthLogout revokes the token used for the current request.
func AuthLogout(ctx *gin.Context) (status int, err error) {
	jti := ctx.GetString("jti")
	if jti == "" {
		return http.StatusUnauthorized, errors.New("missing token id")
	}
	exp := ctx.GetTime("exp")
	if err := lib.GetRevocationStore().Revoke(ctx.Request.Context(), jti, ctx.GetUint("id"), exp); err != nil {
		log.Printf("Error revoking token [%s]: %s\n", jti, err.Error())
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

func ListRoles() ([]models.Role, error) {
	var roles []models.Role
	err := db.GetDb().Order("id asc").Find(&roles).Error
	return roles, err
}
