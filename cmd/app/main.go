package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"roamio/cmd/fx/account_fx"
	"roamio/cmd/fx/db_fx"
	"roamio/cmd/fx/export_fx"
	"roamio/cmd/fx/itinerary_fx"
	"roamio/cmd/fx/logger_fx"
	"roamio/cmd/fx/planner_fx"
	"roamio/cmd/fx/redis_fx"
	"roamio/cmd/fx/sharelink_fx"
	"roamio/cmd/fx/suggestion_fx"
	"roamio/internal/api/controllers"
	"roamio/internal/infra"
	"roamio/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		redis_fx.Module,
		planner_fx.Module,
		itinerary_fx.Module,
		sharelink_fx.Module,
		account_fx.Module,
		suggestion_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController,
	shareController *controllers.ShareController,
	accountController *controllers.AccountController,
	suggestionController *controllers.SuggestionController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		plannerController,
		itineraryController,
		shareController,
		accountController,
		suggestionController,
		exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController,
	shareController *controllers.ShareController,
	accountController *controllers.AccountController,
	suggestionController *controllers.SuggestionController,
	exportController *controllers.ExportController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	shareGroup := r.Group("/share")
	shareGroup.POST("", shareController.CreateShareLink)
	shareGroup.GET("/:token", shareController.ResolveShareLink)
	shareGroup.GET("/:token/qr", shareController.ShareQRCode)

	r.GET("/suggestions", suggestionController.SuggestDestinations)

	generateLimiter := middleware.NewRateLimiter(10, 3)
	r.POST("/itineraries/generate", generateLimiter.Limit(), plannerController.GenerateItinerary)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.Use(middleware.JWTAuthMiddleware())
	itineraryGroup.GET("", itineraryController.ListItineraries)
	itineraryGroup.POST("", itineraryController.SaveItinerary)
	itineraryGroup.GET("/:itineraryId", itineraryController.GetItinerary)
	itineraryGroup.DELETE("/:itineraryId", itineraryController.DeleteItinerary)
	itineraryGroup.PUT("/:itineraryId/days/:day/notes", itineraryController.UpdateDayNotes)
	itineraryGroup.GET("/:itineraryId/days/:day/activities", itineraryController.DayActivities)
	itineraryGroup.POST("/:itineraryId/days/:day/activities/toggle", itineraryController.ToggleActivity)
	itineraryGroup.POST("/:itineraryId/days/:day/activities/commit", itineraryController.CommitSelection)
	itineraryGroup.GET("/:itineraryId/export/pdf", exportController.ExportPDF)
}
