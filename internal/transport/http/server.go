package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"pro_portfolio/internal/domain/models"
	"pro_portfolio/internal/lib/logger/sl"
	"pro_portfolio/internal/metrics"
	authservice "pro_portfolio/internal/services/auth_service"
	contactservice "pro_portfolio/internal/services/contact_service"
	"pro_portfolio/internal/storage"
	"pro_portfolio/internal/transport/http/dto"
	"pro_portfolio/internal/transport/http/dto/request"
	"pro_portfolio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

type PortfolioService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context) ([]dto.ProjectResponse, error)
	GetProjectBySlug(ctx context.Context, slug string) (*dto.ProjectResponse, error)
	CreateSkill(ctx context.Context, req dto.CreateSkillRequest) (*dto.SkillResponse, error)
	ListSkills(ctx context.Context) ([]dto.SkillResponse, error)
	HomeSkills(ctx context.Context) ([]dto.SkillResponse, error)
	CreateExperience(ctx context.Context, req dto.CreateExperienceRequest) (*models.Experience, error)
	ListExperience(ctx context.Context) ([]models.Experience, error)
	CreateEducation(ctx context.Context, req dto.CreateEducationRequest) (*dto.EducationResponse, error)
	ListEducation(ctx context.Context) ([]dto.EducationResponse, error)
}

type BlogService interface {
	CreateBlog(ctx context.Context, req dto.CreateBlogRequest) (*dto.BlogResponse, error)
	ListBlogs(ctx context.Context) ([]dto.BlogResponse, error)
	GetBlogBySlug(ctx context.Context, slug string) (*dto.BlogResponse, error)
}

type ContactService interface {
	SubmitMessage(ctx context.Context, clientIP string, input dto.ContactMessageInput) error
	ListMessages(ctx context.Context) ([]dto.ContactMessageResponse, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type Routers struct {
	log              *slog.Logger
	PortfolioService PortfolioService
	BlogService      BlogService
	ContactService   ContactService
	AuthService      AuthService
}

func NewRouter(log *slog.Logger, portfolioService PortfolioService, blogService BlogService, contactService ContactService, authService AuthService) *Routers {
	return &Routers{
		log:              log,
		PortfolioService: portfolioService,
		BlogService:      blogService,
		ContactService:   contactService,
		AuthService:      authService,
	}
}

// clientIP prefers the first X-Forwarded-For entry so submissions behind a
// proxy are counted per original caller, not per proxy.
func clientIP(c echo.Context) string {
	if forwarded := c.Request().Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}

	return host
}

func (r *Routers) ListProjects(c echo.Context) error {
	const op = "http.routers.ListProjects"

	projects, err := r.PortfolioService.ListProjects(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list projects", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, projects)
}

func (r *Routers) GetProject(c echo.Context) error {
	const op = "http.routers.GetProject"

	project, err := r.PortfolioService.GetProjectBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to get project", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, project)
}

func (r *Routers) ListSkills(c echo.Context) error {
	const op = "http.routers.ListSkills"

	skills, err := r.PortfolioService.ListSkills(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list skills", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, skills)
}

func (r *Routers) HomeSkills(c echo.Context) error {
	const op = "http.routers.HomeSkills"

	skills, err := r.PortfolioService.HomeSkills(c.Request().Context())
	if err != nil {
		// An empty selection is a valid 200; only real failures become 500s.
		r.log.Error("failed to select home skills", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	if skills == nil {
		skills = []dto.SkillResponse{}
	}

	return c.JSON(http.StatusOK, skills)
}

func (r *Routers) ListEducation(c echo.Context) error {
	const op = "http.routers.ListEducation"

	entries, err := r.PortfolioService.ListEducation(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list education", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, entries)
}

func (r *Routers) ListBlogs(c echo.Context) error {
	const op = "http.routers.ListBlogs"

	blogs, err := r.BlogService.ListBlogs(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list blog posts", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, blogs)
}

func (r *Routers) GetBlog(c echo.Context) error {
	const op = "http.routers.GetBlog"

	blog, err := r.BlogService.GetBlogBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to get blog post", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, blog)
}

func (r *Routers) SubmitContact(c echo.Context) error {
	const op = "http.routers.SubmitContact"

	log := r.log.With(slog.String("op", op))

	var input dto.ContactMessageInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidJSON)
	}

	err := r.ContactService.SubmitMessage(c.Request().Context(), clientIP(c), input)
	if err != nil {
		if errors.Is(err, contactservice.ErrRateLimited) {
			metrics.ContactRateLimited.Inc()
			return c.JSON(http.StatusTooManyRequests, response.ErrRateLimited)
		}

		var invalid *contactservice.InvalidInputError
		if errors.As(err, &invalid) {
			return c.JSON(http.StatusBadRequest, response.Detail{Detail: invalid.Detail})
		}

		log.Error("failed to submit contact message", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.Detail{Detail: "Message submitted successfully."})
}

func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(slog.String("op", op))

	var req request.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login request", slog.String("email", req.Email))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	token, err := r.AuthService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}
		log.Error("login failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "something went wrong"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"access_token": token}))
}

func (r *Routers) CreateProject(c echo.Context) error {
	const op = "http.routers.CreateProject"

	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	project, err := r.PortfolioService.CreateProject(c.Request().Context(), req)
	if err != nil {
		return r.adminCreateError(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(project))
}

func (r *Routers) CreateSkill(c echo.Context) error {
	const op = "http.routers.CreateSkill"

	var req dto.CreateSkillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	skill, err := r.PortfolioService.CreateSkill(c.Request().Context(), req)
	if err != nil {
		return r.adminCreateError(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(skill))
}

func (r *Routers) CreateExperience(c echo.Context) error {
	const op = "http.routers.CreateExperience"

	var req dto.CreateExperienceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	experience, err := r.PortfolioService.CreateExperience(c.Request().Context(), req)
	if err != nil {
		return r.adminCreateError(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(experience))
}

func (r *Routers) ListExperience(c echo.Context) error {
	const op = "http.routers.ListExperience"

	entries, err := r.PortfolioService.ListExperience(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list experience", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "something went wrong"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(entries))
}

func (r *Routers) CreateEducation(c echo.Context) error {
	const op = "http.routers.CreateEducation"

	var req dto.CreateEducationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	education, err := r.PortfolioService.CreateEducation(c.Request().Context(), req)
	if err != nil {
		return r.adminCreateError(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(education))
}

func (r *Routers) CreateBlog(c echo.Context) error {
	const op = "http.routers.CreateBlog"

	var req dto.CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	blog, err := r.BlogService.CreateBlog(c.Request().Context(), req)
	if err != nil {
		return r.adminCreateError(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(blog))
}

func (r *Routers) ListContactMessages(c echo.Context) error {
	const op = "http.routers.ListContactMessages"

	messages, err := r.ContactService.ListMessages(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list contact messages", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "something went wrong"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(messages))
}

func (r *Routers) adminCreateError(c echo.Context, op string, err error) error {
	if models.IsValidationError(err) {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}
	if errors.Is(err, storage.ErrDuplicateSlug) || errors.Is(err, storage.ErrNameTaken) {
		return c.JSON(http.StatusConflict, response.ErrDuplicateRecord)
	}

	r.log.Error("admin create failed", slog.String("op", op), sl.Err(err))

	return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "something went wrong"))
}
