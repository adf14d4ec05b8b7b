package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"bodima/internal/apperrors"
	"bodima/internal/models"
	"bodima/internal/repositories"
)

// EventPublisher publishes domain events to the message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// BookingInput is the request payload for creating a booking.
type BookingInput struct {
	UserID  uint      `json:"userId" validate:"required"`
	RoomID  uint      `json:"roomId" validate:"required"`
	CheckIn time.Time `json:"checkIn" validate:"required"`
	Months  int       `json:"months" validate:"required,gt=0"`
}

// BookingService handles business logic for bookings.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	roomRepo    repositories.RoomRepository
	userRepo    repositories.UserRepository
	publisher   EventPublisher
}

// NewBookingService creates a new BookingService.
func NewBookingService(bookingRepo repositories.BookingRepository, roomRepo repositories.RoomRepository, userRepo repositories.UserRepository, publisher EventPublisher) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// GetAllBookings retrieves all bookings.
func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	return s.bookingRepo.GetAll()
}

// GetBookingsByUser retrieves the bookings made by a user.
func (s *BookingService) GetBookingsByUser(userID uint) ([]models.Booking, error) {
	return s.bookingRepo.GetByUser(userID)
}

// GetBookingByID retrieves a single booking by its ID.
func (s *BookingService) GetBookingByID(id uint) (*models.Booking, error) {
	return s.bookingRepo.GetByID(id)
}

// CreateBooking validates the user and room, prices the stay, persists the
// booking and publishes a booking.created event. A publish failure is logged
// and does not fail the booking.
func (s *BookingService) CreateBooking(input BookingInput) (*models.Booking, error) {
	if _, err := s.userRepo.GetByID(input.UserID); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(input.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Available {
		return nil, apperrors.NewValidation("Room is not available!")
	}

	booking := &models.Booking{
		Reference:   uuid.New().String(),
		UserID:      input.UserID,
		RoomID:      input.RoomID,
		CheckIn:     input.CheckIn,
		Months:      input.Months,
		TotalAmount: room.PricePerMonth * float64(input.Months),
		Status:      models.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"reference": booking.Reference,
			"bookingId": booking.ID,
			"userId":    booking.UserID,
			"roomId":    booking.RoomID,
			"status":    booking.Status,
			"total":     booking.TotalAmount,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal booking event for %s: %v", booking.Reference, err)
		} else if err := s.publisher.Publish("booking", "booking.created", body); err != nil {
			log.Printf("Warning: failed to publish booking.created for %s: %v", booking.Reference, err)
		}
	}

	return booking, nil
}

// UpdateBookingStatus changes the status of a booking to one of the known
// statuses.
func (s *BookingService) UpdateBookingStatus(id uint, status string) error {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCancelled, models.BookingStatusCompleted:
	default:
		return apperrors.NewValidation("Invalid booking status!")
	}
	return s.bookingRepo.UpdateStatus(id, status)
}

// DeleteBooking removes a booking permanently.
func (s *BookingService) DeleteBooking(id uint) error {
	if _, err := s.bookingRepo.GetByID(id); err != nil {
		return err
	}
	return s.bookingRepo.Delete(id)
}
