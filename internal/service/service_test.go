package service

import (
	"fmt"
	"strings"
	"testing"

	"mindcare/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Mood{}, &model.Meditation{},
		&model.Therapist{}, &model.Booking{}, &model.SymptomCheck{},
	))
	return db
}

func seedTherapist(t *testing.T, db *gorm.DB, name string) model.Therapist {
	t.Helper()
	th := model.Therapist{
		ID:             uuid.NewString(),
		Name:           name,
		Specialization: "Anxiety & Stress",
		Email:          strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@mindcare.example",
	}
	require.NoError(t, db.Create(&th).Error)
	return th
}
