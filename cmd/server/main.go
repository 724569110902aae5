package main

import (
	"flag"
	"log/slog"
	"os"

	"mindcare/internal/config"
	"mindcare/internal/handler"
	"mindcare/internal/logger"
	"mindcare/internal/mailer"
	"mindcare/internal/middleware"
	"mindcare/internal/model"
	"mindcare/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Mood{}, &model.Meditation{},
		&model.Therapist{}, &model.Booking{}, &model.SymptomCheck{},
	); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	resend := mailer.NewClient(cfg.Mail.BaseURL, cfg.Mail.APIKey, cfg.Mail.From)
	notifier := mailer.NewBookingDispatcher(resend, cfg.Mail.OperatorEmails)

	authSvc := service.NewAuthService(db)
	moodSvc := service.NewMoodService(db)
	catalogSvc := service.NewCatalogService(db)
	bookingSvc := service.NewBookingService(db, notifier)
	adviceSvc := service.NewAdviceService(db, cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)

	authH := handler.NewAuthHandler(authSvc)
	moodH := handler.NewMoodHandler(moodSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	bookingH := handler.NewBookingHandler(bookingSvc)
	symptomH := handler.NewSymptomHandler(adviceSvc)
	notifyH := handler.NewNotifyHandler(notifier)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/auth/register", authH.Register)
	r.POST("/api/auth/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/moods", moodH.Recent)
	api.POST("/moods", moodH.Create)
	api.GET("/meditations", catalogH.Meditations)
	api.GET("/therapists", catalogH.Therapists)
	api.GET("/bookings", bookingH.List)
	api.POST("/bookings", bookingH.Create)
	api.PUT("/bookings/:id", bookingH.Update)
	api.DELETE("/bookings/:id", bookingH.Delete)
	api.POST("/symptom-check", symptomH.Check)

	// standalone function endpoint, permissive CORS per its contract
	r.OPTIONS("/functions/send-booking-email", notifyH.Options)
	r.POST("/functions/send-booking-email", notifyH.SendBookingEmail)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
