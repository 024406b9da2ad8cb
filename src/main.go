package main

import (
	"cafe/src/boot"
	"cafe/src/config"
	"cafe/src/controllers"
	"cafe/src/middlewares"
	"cafe/src/types"
	"cafe/src/utils"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"time"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

const (
	apiPrefix string = "/api"
)

var (
	staffOnly = middlewares.RequireRoles(types.ROLE_ADMIN, types.ROLE_EMPLOYEE)
	adminOnly = middlewares.RequireRoles(types.ROLE_ADMIN)
)

func isStaff(ctx *gin.Context) bool {
	role := types.RoleName(ctx.GetString("role"))
	return role == types.ROLE_ADMIN || role == types.ROLE_EMPLOYEE
}

// canAccess allows staff and the owner of a record.
func canAccess(ctx *gin.Context, ownerID uint) bool {
	return isStaff(ctx) || ctx.GetUint("id") == ownerID
}

func bindID(ctx *gin.Context, resource string) (uint, bool) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.SendFail(ctx, http.StatusNotFound, resource+" not found", nil)
		return 0, false
	}
	return params.ID, true
}

func forbidden(ctx *gin.Context) {
	utils.SendError(ctx, types.ErrForbidden, "")
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.RequestID)
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		if config.IsMaintenanceMode() {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			utils.SendFail(ctx, http.StatusServiceUnavailable, "Server is under maintenance", nil)
			return
		}
	})
	return g
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := utils.RegisterValidators(v); err != nil {
			log.Fatalf("error registering validators: %s", err.Error())
		}
	}
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	user := apiv1.Group("/user", middlewares.RateLimit(rate.Every(time.Second), 60))
	user.
		POST("/signup", func(ctx *gin.Context) {
			var body types.SignupRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			result, status, err := controllers.AuthSignup(ctx, &body)
			if err != nil {
				log.Printf("[AuthSignup] error: %s\n", err.Error())
				if status == http.StatusInternalServerError {
					utils.SendFail(ctx, status, utils.MSG_INTERNAL_ERROR, nil)
					return
				}
				utils.SendError(ctx, err, "User")
				return
			}
			utils.SendSuccess(ctx, result, "User registered successfully")
		}).
		POST("/login", func(ctx *gin.Context) {
			var body types.LoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			result, status, err := controllers.AuthLogin(ctx, &body)
			if err != nil {
				if status == http.StatusInternalServerError {
					log.Printf("[AuthLogin] error: %s\n", err.Error())
					utils.SendFail(ctx, status, utils.MSG_INTERNAL_ERROR, nil)
					return
				}
				utils.SendError(ctx, err, "User")
				return
			}
			utils.SendSuccess(ctx, result, "Login successful")
		}).
		GET("/roles", func(ctx *gin.Context) {
			roles, err := controllers.ListRoles()
			if err != nil {
				utils.SendError(ctx, err, "Role")
				return
			}
			utils.SendSuccess(ctx, roles, "Roles retrieved successfully")
		})
	return apiv1
}

func authorizedRoutes(g *gin.Engine) *gin.RouterGroup {
	authorized := g.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	authorized.POST("/user/logout", func(ctx *gin.Context) {
		status, err := controllers.AuthLogout(ctx)
		if err != nil {
			msg := utils.MSG_INTERNAL_ERROR
			if status == http.StatusUnauthorized {
				msg = middlewares.MSG_UNAUTHENTICATED
			}
			utils.SendFail(ctx, status, msg, nil)
			return
		}
		utils.SendSuccess(ctx, nil, "Logged out successfully")
	})
	categoryHandlers(authorized)
	itemHandlers(authorized)
	recipeIngredientHandlers(authorized)
	inventoryHandlers(authorized)
	tableHandlers(authorized)
	reservationHandlers(authorized)
	orderHandlers(authorized)
	invoiceHandlers(authorized)
	staffHandlers(authorized)
	shiftHandlers(authorized)
	return authorized
}

// newRouter wires every route. CORS is applied by the caller.
func newRouter(corsMiddleware ...gin.HandlerFunc) *gin.Engine {
	router := setupRouter()
	for _, mw := range corsMiddleware {
		router.Use(mw)
	}
	router = maintenanceModeMiddleware(router)
	publicRoutes(router)
	authorizedRoutes(router)
	return router
}

func corsMiddleware() gin.HandlerFunc {
	if config.GetAPIEnv() == "local" {
		cc := cors.DefaultConfig()
		cc.AllowAllOrigins = true
		cc.AllowHeaders = append(cc.AllowHeaders, "Authorization")
		return cors.New(cc)
	}
	appHost := config.GetAppHost()
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization", middlewares.REQUEST_ID_HEADER)
	cc.ExposeHeaders = append(cc.ExposeHeaders, middlewares.REQUEST_ID_HEADER)
	cc.AllowOriginFunc = func(origin string) bool {
		if appHost == "" {
			return false
		}
		match, _ := regexp.MatchString(appHost, origin)
		return match
	}
	cc.AllowCredentials = true
	cc.AllowAllOrigins = false
	return cors.New(cc)
}

func initLogger() {
	logDir := config.GetLogDir()
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.Printf("Could not create log directory %s: %s\n", logDir, err.Error())
		return
	}
	serverLogs := path.Join(logDir, "server.log")
	apiLogs := path.Join(logDir, "api.log")
	gin.ForceConsoleColor()

	f, err := os.OpenFile(apiLogs, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	if config.GetAPIEnv() == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			log.Printf("No .env file loaded: %s\n", err.Error())
		}
	}
	initLogger()

	boot.InitDb()
	boot.InitScheduler()
	defer boot.StopScheduler()

	registerValidators()
	router := newRouter(corsMiddleware())

	if err := router.Run(":" + config.GetPort()); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
