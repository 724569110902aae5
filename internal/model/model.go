package model

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

type SessionUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

type MoodRequest struct {
	MoodLevel int    `json:"mood_level"`
	Notes     string `json:"notes"`
}

type BookingRequest struct {
	TherapistID string `json:"therapist_id"`
	BookingDate string `json:"booking_date"`
}

type SymptomRequest struct {
	Symptoms string `json:"symptoms"`
}

type SymptomResponse struct {
	Response string `json:"response"`
}

// BookingEmail is the notification function's wire payload.
type BookingEmail struct {
	TherapistName string `json:"therapistName"`
	BookingDate   string `json:"bookingDate"`
	JitsiRoomCode string `json:"jitsiRoomCode"`
	UserName      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
}
