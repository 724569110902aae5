package main

import (
	"flag"
	"log"

	"mindcare/internal/config"
	"mindcare/internal/logger"
	"mindcare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seeds the read-only catalogs (therapists, meditations). The server never
// writes these tables; run this once per environment.
func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&model.Therapist{}, &model.Meditation{}); err != nil {
		log.Fatal("migrate failed:", err)
	}

	if err := seedTherapists(db); err != nil {
		log.Fatal("therapist seed failed:", err)
	}
	if err := seedMeditations(db); err != nil {
		log.Fatal("meditation seed failed:", err)
	}

	logger.Info("=== all done ===")
}

func seedTherapists(db *gorm.DB) error {
	var count int64
	db.Model(&model.Therapist{}).Count(&count)
	if count > 0 {
		logger.Info("therapists already seeded", "count", count)
		return nil
	}

	therapists := []model.Therapist{
		{Name: "Dr. Sarah Chen", Specialization: "Anxiety & Stress", Bio: "15 years helping clients build resilience against anxiety and chronic stress.", Email: "sarah.chen@mindcare.example"},
		{Name: "Dr. Marcus Webb", Specialization: "Depression", Bio: "Specializes in cognitive behavioral therapy for mood disorders.", Email: "marcus.webb@mindcare.example"},
		{Name: "Dr. Priya Nair", Specialization: "Relationships", Bio: "Couples and family therapist focused on communication patterns.", Email: "priya.nair@mindcare.example"},
		{Name: "Dr. James Okafor", Specialization: "Trauma & PTSD", Bio: "EMDR-certified practitioner working with trauma survivors.", Email: "james.okafor@mindcare.example"},
	}
	for i := range therapists {
		therapists[i].ID = uuid.NewString()
	}
	if err := db.Create(&therapists).Error; err != nil {
		return err
	}
	logger.Info("therapists seeded", "count", len(therapists))
	return nil
}

func seedMeditations(db *gorm.DB) error {
	var count int64
	db.Model(&model.Meditation{}).Count(&count)
	if count > 0 {
		logger.Info("meditations already seeded", "count", count)
		return nil
	}

	meditations := []model.Meditation{
		{Title: "Morning Calm", Description: "Start your day with a grounded, quiet mind.", DurationMinutes: 10, Category: "calm"},
		{Title: "Deep Sleep Journey", Description: "Wind down and drift into restful sleep.", DurationMinutes: 20, Category: "sleep"},
		{Title: "Stress Release", Description: "Let go of tension held through the day.", DurationMinutes: 15, Category: "stress"},
		{Title: "Inner Peace", Description: "A loving-kindness practice for difficult days.", DurationMinutes: 12, Category: "peace"},
		{Title: "Five-Minute Reset", Description: "A quick breathing exercise between tasks.", DurationMinutes: 5, Category: "calm"},
		{Title: "Body Scan for Sleep", Description: "Progressive relaxation from head to toe.", DurationMinutes: 25, Category: "sleep"},
	}
	for i := range meditations {
		meditations[i].ID = uuid.NewString()
	}
	if err := db.Create(&meditations).Error; err != nil {
		return err
	}
	logger.Info("meditations seeded", "count", len(meditations))
	return nil
}
