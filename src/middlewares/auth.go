package middlewares

import (
	"cafe/src/db"
	"cafe/src/lib"
	"cafe/src/models"
	"cafe/src/models/scopes"
	"cafe/src/types"
	"cafe/src/utils"
	"log"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const MSG_UNAUTHENTICATED = "Unauthenticated"

func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	reqToken, ok := strings.CutPrefix(bearerToken, "Bearer ")
	if !ok || strings.TrimSpace(reqToken) == "" {
		utils.SendFail(ctx, http.StatusUnauthorized, MSG_UNAUTHENTICATED, nil)
		return
	}
	claims, err := lib.ParseJWT(strings.TrimSpace(reqToken))
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		utils.SendFail(ctx, http.StatusUnauthorized, MSG_UNAUTHENTICATED, nil)
		return
	}
	revoked, err := lib.GetRevocationStore().IsRevoked(ctx.Request.Context(), claims.ID)
	if err != nil {
		log.Printf("[Auth] Error checking token revocation: %s\n", err.Error())
		utils.SendFail(ctx, http.StatusUnauthorized, MSG_UNAUTHENTICATED, nil)
		return
	}
	if revoked {
		utils.SendFail(ctx, http.StatusUnauthorized, MSG_UNAUTHENTICATED, nil)
		return
	}

	uid, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		utils.SendFail(ctx, http.StatusUnauthorized, MSG_UNAUTHENTICATED, nil)
		return
	}
	var user models.User
	if err := db.GetDb().
		Scopes(scopes.WithID(uint(uid))).
		Preload("Role").
		First(&user).
		Error; err != nil {
		utils.SendFail(ctx, http.StatusUnauthorized, MSG_UNAUTHENTICATED, nil)
		return
	}
	var role string
	if user.Role != nil {
		role = string(user.Role.Name)
	}
	ctx.Set("id", user.ID)
	ctx.Set("email", user.Email)
	ctx.Set("role", role)
	ctx.Set("jti", claims.ID)
	ctx.Set("exp", claims.ExpiresAt.Time)
}

// RequireRoles lets the request through only when the authenticated user holds one of roles.
func RequireRoles(roles ...types.RoleName) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := types.RoleName(ctx.GetString("role"))
		if !slices.Contains(roles, role) {
			utils.SendFail(ctx, http.StatusForbidden, "You are not allowed to perform this action", nil)
			return
		}
		ctx.Next()
	}
}
