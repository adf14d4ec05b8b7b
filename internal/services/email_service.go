package services

import (
	"bodima/internal/apperrors"
)

// ContactSender delivers contact-form messages. Satisfied by pkg/mailer.
type ContactSender interface {
	SendContactMessage(name, fromEmail, title, message string) error
}

// ContactInput is the request payload for the contact form.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// EmailService handles contact-form submissions. A nil sender means mail was
// never configured; submissions then fail with a configuration error rather
// than a crash.
type EmailService struct {
	sender ContactSender
}

// NewEmailService creates a new EmailService.
func NewEmailService(sender ContactSender) *EmailService {
	return &EmailService{
		sender: sender,
	}
}

// SendContactMessage validates the submission and hands it to the sender.
func (s *EmailService) SendContactMessage(input ContactInput) error {
	if s.sender == nil {
		return apperrors.NewConfig("Email credentials are missing")
	}
	if input.Name == "" || input.Email == "" || input.Title == "" || input.Message == "" {
		return apperrors.NewValidation("All fields are required!")
	}
	if err := s.sender.SendContactMessage(input.Name, input.Email, input.Title, input.Message); err != nil {
		return apperrors.NewInternal("Failed to send email", err)
	}
	return nil
}
