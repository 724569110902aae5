package model

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type Mood struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36" json:"user_id"`
	MoodLevel int       `json:"mood_level"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type Meditation struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Category        string    `json:"category"`
	AudioURL        string    `json:"audio_url"`
	ImageURL        string    `json:"image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

type Therapist struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatar_url"`
	Email          string `json:"email"`
}

type Booking struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"index;size:36" json:"user_id"`
	TherapistID   string    `gorm:"size:36" json:"therapist_id"`
	BookingDate   time.Time `json:"booking_date"`
	JitsiRoomCode string    `json:"jitsi_room_code"`
	Status        string    `gorm:"default:scheduled" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	Therapist     Therapist `gorm:"foreignKey:TherapistID" json:"therapist"`
}

type SymptomCheck struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"index;size:36" json:"user_id"`
	Symptoms   string    `json:"symptoms"`
	AIResponse string    `json:"ai_response"`
	CreatedAt  time.Time `json:"created_at"`
}

func (User) TableName() string         { return "users" }
func (Mood) TableName() string         { return "moods" }
func (Meditation) TableName() string   { return "meditations" }
func (Therapist) TableName() string    { return "therapists" }
func (Booking) TableName() string      { return "bookings" }
func (SymptomCheck) TableName() string { return "symptom_checks" }
