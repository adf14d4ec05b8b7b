package services

import (
	"github.com/google/uuid"

	"bodima/internal/models"
	"bodima/internal/repositories"
)

// PaymentInput is the request payload for recording a payment.
type PaymentInput struct {
	BookingID uint    `json:"bookingId" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,max=30"`
}

// PaymentService handles business logic for payment records.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	bookingRepo repositories.BookingRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repositories.PaymentRepository, bookingRepo repositories.BookingRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
	}
}

// GetAllPayments retrieves all payment records.
func (s *PaymentService) GetAllPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}

// GetPaymentsByBooking retrieves the payments recorded against a booking.
func (s *PaymentService) GetPaymentsByBooking(bookingID uint) ([]models.Payment, error) {
	if _, err := s.bookingRepo.GetByID(bookingID); err != nil {
		return nil, err
	}
	return s.paymentRepo.GetByBooking(bookingID)
}

// GetPaymentByID retrieves a single payment by its ID.
func (s *PaymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	return s.paymentRepo.GetByID(id)
}

// RecordPayment validates the booking and stores a payment record.
func (s *PaymentService) RecordPayment(input PaymentInput) (*models.Payment, error) {
	if _, err := s.bookingRepo.GetByID(input.BookingID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		Reference: uuid.New().String(),
		BookingID: input.BookingID,
		Amount:    input.Amount,
		Method:    input.Method,
		Status:    "paid",
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}
