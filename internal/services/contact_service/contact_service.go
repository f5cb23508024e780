package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"pro_portfolio/internal/domain/models"
	"pro_portfolio/internal/lib/logger/sl"
	"pro_portfolio/internal/repository"
	"pro_portfolio/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
)

// ErrRateLimited is returned when the caller's hourly submission quota is
// already spent.
var ErrRateLimited = errors.New("rate limit exceeded")

// InvalidInputError carries the client-facing message for the first field
// check that failed.
type InvalidInputError struct {
	Detail string
}

func (e *InvalidInputError) Error() string {
	return e.Detail
}

const rateKeyPrefix = "contact:rate:"

type ContactService struct {
	log      *slog.Logger
	repo     repository.ContactRepository
	limiter  repository.RateLimiter
	validate *validator.Validate
	limit    int64
	window   time.Duration
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository, limiter repository.RateLimiter, limit int64, window time.Duration) *ContactService {
	return &ContactService{
		log:      log,
		repo:     repo,
		limiter:  limiter,
		validate: validator.New(),
		limit:    limit,
		window:   window,
	}
}

// SubmitMessage runs the full contact pipeline: quota check, field
// validation in a fixed order, body composition, persistence, and finally
// the counter hit. The counter is only touched after a successful save, so
// rejected submissions never consume quota.
func (s *ContactService) SubmitMessage(ctx context.Context, clientIP string, input dto.ContactMessageInput) error {
	const op = "contact_service.SubmitMessage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("client_ip", clientIP),
	)

	key := rateKeyPrefix + clientIP

	count, err := s.limiter.Count(ctx, key)
	if err != nil {
		log.Error("failed to read rate counter", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if count >= s.limit {
		log.Warn("submission rejected", slog.Int64("count", count))
		return ErrRateLimited
	}

	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	service := strings.TrimSpace(input.Service)
	budget := strings.TrimSpace(input.Budget)
	timeline := strings.TrimSpace(input.Timeline)
	phone := strings.TrimSpace(input.Phone)

	if err := s.validateInput(fullName, email, message, service, budget, timeline, phone); err != nil {
		log.Info("submission failed validation", sl.Err(err))
		return err
	}

	msg := models.ContactMessage{
		Name:      fullName,
		Email:     email,
		Message:   composeBody(service, budget, timeline, phone, message),
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.SaveContactMessage(ctx, msg)
	if err != nil {
		log.Error("failed to save contact message", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	// A lost counter hit widens the window for one caller at worst; the
	// message is already stored, so the request still succeeds.
	if _, err := s.limiter.Hit(ctx, key, s.window); err != nil {
		log.Error("failed to record rate counter hit", sl.Err(err))
	}

	log.Info("contact message stored", slog.String("id", id.String()))

	return nil
}

// validateInput checks fields in a fixed order and short-circuits on the
// first failure. Lengths count characters, not bytes.
func (s *ContactService) validateInput(fullName, email, message, service, budget, timeline, phone string) error {
	if n := utf8.RuneCountInString(fullName); n < 2 || n > 120 {
		return &InvalidInputError{Detail: "Full name must be between 2 and 120 characters."}
	}

	if err := s.validate.Var(email, "required,email"); err != nil {
		return &InvalidInputError{Detail: "Invalid email address."}
	}

	if n := utf8.RuneCountInString(message); n < 10 || n > 4000 {
		return &InvalidInputError{Detail: "Message must be between 10 and 4000 characters."}
	}

	if utf8.RuneCountInString(service) > 120 ||
		utf8.RuneCountInString(budget) > 120 ||
		utf8.RuneCountInString(timeline) > 120 ||
		utf8.RuneCountInString(phone) > 80 {
		return &InvalidInputError{Detail: "One or more fields exceed the maximum allowed length."}
	}

	return nil
}

// ListMessages returns every stored submission, newest first.
func (s *ContactService) ListMessages(ctx context.Context) ([]dto.ContactMessageResponse, error) {
	const op = "contact_service.ListMessages"
	log := s.log.With(slog.String("op", op))

	messages, err := s.repo.ListContactMessages(ctx)
	if err != nil {
		log.Error("failed to list contact messages", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.NewContactMessageResponse(m))
	}

	return out, nil
}

func composeBody(service, budget, timeline, phone, message string) string {
	var b strings.Builder

	b.WriteString("Service: " + orNA(service) + "\n")
	b.WriteString("Budget: " + orNA(budget) + "\n")
	b.WriteString("Timeline: " + orNA(timeline) + "\n")
	b.WriteString("Phone: " + orNA(phone) + "\n")
	b.WriteString("\n")
	b.WriteString(message)

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
