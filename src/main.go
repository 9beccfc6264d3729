package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	"odyssey/src/boot"
	"odyssey/src/common"
	"odyssey/src/config"
	"odyssey/src/db"
	"odyssey/src/lib"
	libaws "odyssey/src/lib/aws"
	"odyssey/src/services"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type appServices struct {
	accounts *services.AccountService
	stats    *services.StatsService
	support  *services.SupportService
	packages *services.PackageService
	bookings *services.BookingService
}

func newAppServices(gdb *gorm.DB) *appServices {
	users := db.NewUserStore(gdb)
	packages := db.NewPackageStore(gdb)
	bookings := db.NewBookingStore(gdb)
	tickets := db.NewTicketStore(gdb)

	return &appServices{
		accounts: services.NewAccountService(users, lib.NewRedisSessions(24*time.Hour)),
		stats:    services.NewStatsService(users, packages, bookings),
		support:  services.NewSupportService(tickets, users, bookings),
		packages: services.NewPackageService(packages, users, libaws.NewMediaStore()),
		bookings: services.NewBookingService(bookings, users, packages),
	}
}

func uintParam(ctx *gin.Context, name string) (uint, bool) {
	atoi, err := strconv.Atoi(ctx.Param(name))
	if err != nil || atoi < 0 {
		common.AbortWithError(ctx, common.BadRequestf("invalid %s", name))
		return 0, false
	}
	return uint(atoi), true
}

func travelDateValidatorFunc(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(config.DATE_PARSE_FORMAT, value)
	return err == nil
}

func setupRouter(svcs *appServices, middleware ...gin.HandlerFunc) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("traveldate", travelDateValidatorFunc)
	}

	router := gin.Default()
	router.Use(middleware...)

	router.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Odyssey Travel Backend is LIVE 🚀")
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Application is running successfully ✅")
	})

	api := router.Group("/api")
	accountHandlers(api, svcs.accounts)
	statsHandlers(api, svcs.stats)
	supportHandlers(api, svcs.support)
	packageHandlers(api, svcs.packages)
	bookingHandlers(api, svcs.bookings)

	return router
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	gdb := boot.InitDb()

	var corsMiddleware gin.HandlerFunc
	if apiEnv == "local" {
		corsMiddleware = cors.Default()
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOrigins = []string{os.Getenv("APP_HOST")}
		corsMiddleware = cors.New(cc)
	}

	router := setupRouter(newAppServices(gdb), corsMiddleware)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %s\n", err.Error())
	}
}
