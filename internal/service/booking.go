package service

import (
	"context"
	"fmt"
	"time"

	"mindcare/internal/logger"
	"mindcare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const roomCodePrefix = "mindcare-"

// BookingNotifier dispatches the confirmation email for a new booking.
type BookingNotifier interface {
	SendBookingEmail(ctx context.Context, msg model.BookingEmail) error
}

type BookingService struct {
	db       *gorm.DB
	notifier BookingNotifier
}

func NewBookingService(db *gorm.DB, notifier BookingNotifier) *BookingService {
	return &BookingService{db: db, notifier: notifier}
}

// Create inserts a scheduled booking and dispatches the confirmation email.
// The booking is committed before the email goes out; a failed send is logged
// and does not fail the create.
func (s *BookingService) Create(ctx context.Context, userID, userName, userEmail, therapistID string, date time.Time) (*model.Booking, error) {
	if therapistID == "" || date.IsZero() {
		return nil, fmt.Errorf("%w: please select a therapist and a date", ErrValidation)
	}

	var therapist model.Therapist
	if err := s.db.WithContext(ctx).First(&therapist, "id = ?", therapistID).Error; err != nil {
		return nil, fmt.Errorf("%w: unknown therapist", ErrValidation)
	}

	b := model.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		TherapistID:   therapist.ID,
		BookingDate:   date,
		JitsiRoomCode: newRoomCode(),
		Status:        "scheduled",
	}
	if err := s.db.WithContext(ctx).Omit("Therapist").Create(&b).Error; err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	b.Therapist = therapist

	if s.notifier != nil && userEmail != "" {
		err := s.notifier.SendBookingEmail(ctx, model.BookingEmail{
			TherapistName: therapist.Name,
			BookingDate:   date.Format(time.RFC3339),
			JitsiRoomCode: b.JitsiRoomCode,
			UserName:      displayName(userName),
			UserEmail:     userEmail,
		})
		if err != nil {
			logger.Warn("booking email failed", "booking_id", b.ID, "err", err)
		}
	}

	return &b, nil
}

// Reschedule moves a booking owned by userID to a new date. Only the date
// changes; the room code survives edits.
func (s *BookingService) Reschedule(ctx context.Context, userID, bookingID string, date time.Time) error {
	if bookingID == "" || date.IsZero() {
		return fmt.Errorf("%w: please select a date", ErrValidation)
	}

	var b model.Booking
	if err := s.db.WithContext(ctx).First(&b, "id = ? AND user_id = ?", bookingID, userID).Error; err != nil {
		return fmt.Errorf("%w: booking not found", ErrValidation)
	}
	if err := s.db.WithContext(ctx).Model(&b).Update("booking_date", date).Error; err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		Delete(&model.Booking{})
	if res.Error != nil {
		return fmt.Errorf("delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: booking not found", ErrValidation)
	}
	return nil
}

func (s *BookingService) List(ctx context.Context, userID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := s.db.WithContext(ctx).
		Preload("Therapist").
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	return bookings, nil
}

// MeetingLink derives the video-room URL from a stored room code.
func MeetingLink(roomCode string) string {
	return "https://meet.jit.si/" + roomCode
}

func newRoomCode() string {
	return fmt.Sprintf("%s%d", roomCodePrefix, time.Now().UnixMilli())
}

func displayName(name string) string {
	if name == "" {
		return "User"
	}
	return name
}
