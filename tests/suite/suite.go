package suite

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"pro_portfolio/internal/config"
	"pro_portfolio/internal/domain/models"
	"pro_portfolio/internal/repository"
	contactservice "pro_portfolio/internal/services/contact_service"

	"github.com/google/uuid"
)

type Suite struct {
	*testing.T
	Cfg            *config.Config
	ContactService *contactservice.ContactService
	ContactRepo    *InMemoryContactRepository
}

// InMemoryContactRepository keeps submissions in a slice so tests can count
// persisted records without a database.
type InMemoryContactRepository struct {
	mu       sync.Mutex
	messages []models.ContactMessage
}

func (r *InMemoryContactRepository) SaveContactMessage(ctx context.Context, message models.ContactMessage) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = uuid.New()
	r.messages = append(r.messages, message)

	return message.ID, nil
}

func (r *InMemoryContactRepository) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ContactMessage, len(r.messages))
	copy(out, r.messages)

	return out, nil
}

func (r *InMemoryContactRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.messages)
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	cfg := config.MustLoadPath(configPath())

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Hour)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	repo := &InMemoryContactRepository{}
	limiter := repository.NewMemoryRateLimiter()

	contactService := contactservice.NewContactService(log, repo, limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window)

	t.Cleanup(func() {
		t.Helper()
		cancelCtx()
	})

	return ctx, &Suite{
		T:              t,
		Cfg:            cfg,
		ContactService: contactService,
		ContactRepo:    repo,
	}
}

func configPath() string {
	const key = "CONFIG_PATH"

	if v := os.Getenv(key); v != "" {
		return v
	}

	return "../config/local.yaml"
}
