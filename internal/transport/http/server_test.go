package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pro_portfolio/internal/domain/models"
	authservice "pro_portfolio/internal/services/auth_service"
	contactservice "pro_portfolio/internal/services/contact_service"
	"pro_portfolio/internal/storage"
	httpapp "pro_portfolio/internal/transport/http"
	"pro_portfolio/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectResponse), args.Error(1)
}

func (m *MockPortfolioService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProjectResponse), args.Error(1)
}

func (m *MockPortfolioService) GetProjectBySlug(ctx context.Context, slug string) (*dto.ProjectResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectResponse), args.Error(1)
}

func (m *MockPortfolioService) CreateSkill(ctx context.Context, req dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SkillResponse), args.Error(1)
}

func (m *MockPortfolioService) ListSkills(ctx context.Context) ([]dto.SkillResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SkillResponse), args.Error(1)
}

func (m *MockPortfolioService) HomeSkills(ctx context.Context) ([]dto.SkillResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SkillResponse), args.Error(1)
}

func (m *MockPortfolioService) CreateExperience(ctx context.Context, req dto.CreateExperienceRequest) (*models.Experience, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Experience), args.Error(1)
}

func (m *MockPortfolioService) ListExperience(ctx context.Context) ([]models.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Experience), args.Error(1)
}

func (m *MockPortfolioService) CreateEducation(ctx context.Context, req dto.CreateEducationRequest) (*dto.EducationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EducationResponse), args.Error(1)
}

func (m *MockPortfolioService) ListEducation(ctx context.Context) ([]dto.EducationResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EducationResponse), args.Error(1)
}

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) CreateBlog(ctx context.Context, req dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlogResponse), args.Error(1)
}

func (m *MockBlogService) ListBlogs(ctx context.Context) ([]dto.BlogResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BlogResponse), args.Error(1)
}

func (m *MockBlogService) GetBlogBySlug(ctx context.Context, slug string) (*dto.BlogResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlogResponse), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SubmitMessage(ctx context.Context, clientIP string, input dto.ContactMessageInput) error {
	args := m.Called(ctx, clientIP, input)
	return args.Error(0)
}

func (m *MockContactService) ListMessages(ctx context.Context) ([]dto.ContactMessageResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ContactMessageResponse), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type testEnv struct {
	echo      *echo.Echo
	portfolio *MockPortfolioService
	blog      *MockBlogService
	contact   *MockContactService
	auth      *MockAuthService
	routers   *httpapp.Routers
}

func newTestEnv() *testEnv {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}

	env := &testEnv{
		echo:      e,
		portfolio: new(MockPortfolioService),
		blog:      new(MockBlogService),
		contact:   new(MockContactService),
		auth:      new(MockAuthService),
	}
	env.routers = httpapp.NewRouter(slog.Default(), env.portfolio, env.blog, env.contact, env.auth)

	return env
}

func (env *testEnv) request(method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, echo.Context) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.RemoteAddr = "192.0.2.10:54321"

	rec := httptest.NewRecorder()

	return rec, env.echo.NewContext(req, rec)
}

func TestListProjects_DuplicatesTechnologies(t *testing.T) {
	env := newTestEnv()

	project := models.Project{
		ID:        uuid.New(),
		Title:     "Test One",
		Slug:      "test-one",
		TechStack: models.StringList{"Go", "React"},
		Category:  models.ProjectCategoryFullstack,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	env.portfolio.On("ListProjects", mock.Anything).
		Return([]dto.ProjectResponse{dto.NewProjectResponse(&project)}, nil)

	rec, c := env.request(http.MethodGet, "/projects/", "", nil)
	require.NoError(t, env.routers.ListProjects(c))

	require.Equal(t, http.StatusOK, rec.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, out[0]["tech_stack"], out[0]["technologies"])
	assert.Equal(t, "test-one", out[0]["slug"])
}

func TestGetProject_NotFound(t *testing.T) {
	env := newTestEnv()

	env.portfolio.On("GetProjectBySlug", mock.Anything, "missing").
		Return(nil, storage.ErrNotFound)

	rec, c := env.request(http.MethodGet, "/projects/missing/", "", nil)
	c.SetParamNames("slug")
	c.SetParamValues("missing")
	require.NoError(t, env.routers.GetProject(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String())
}

func TestHomeSkills_InternalErrorIsGeneric(t *testing.T) {
	env := newTestEnv()

	env.portfolio.On("HomeSkills", mock.Anything).
		Return(nil, errors.New("connection refused"))

	rec, c := env.request(http.MethodGet, "/skills/home/", "", nil)
	require.NoError(t, env.routers.HomeSkills(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"An internal error occurred."}`, rec.Body.String())
}

func TestHomeSkills_EmptySelectionIsOK(t *testing.T) {
	env := newTestEnv()

	env.portfolio.On("HomeSkills", mock.Anything).
		Return([]dto.SkillResponse{}, nil)

	rec, c := env.request(http.MethodGet, "/skills/home/", "", nil)
	require.NoError(t, env.routers.HomeSkills(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSubmitContact_Success(t *testing.T) {
	env := newTestEnv()

	env.contact.On("SubmitMessage", mock.Anything, "192.0.2.10", mock.AnythingOfType("dto.ContactMessageInput")).
		Return(nil)

	body := `{"fullName":"Jane Doe","email":"jane@example.com","message":"I would like a website."}`
	rec, c := env.request(http.MethodPost, "/contact/", body, nil)
	require.NoError(t, env.routers.SubmitContact(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"detail":"Message submitted successfully."}`, rec.Body.String())
}

func TestSubmitContact_UsesForwardedFor(t *testing.T) {
	env := newTestEnv()

	env.contact.On("SubmitMessage", mock.Anything, "203.0.113.7", mock.AnythingOfType("dto.ContactMessageInput")).
		Return(nil)

	body := `{"fullName":"Jane Doe","email":"jane@example.com","message":"I would like a website."}`
	rec, c := env.request(http.MethodPost, "/contact/", body, map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
	})
	require.NoError(t, env.routers.SubmitContact(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	env.contact.AssertExpectations(t)
}

func TestSubmitContact_InvalidJSON(t *testing.T) {
	env := newTestEnv()

	rec, c := env.request(http.MethodPost, "/contact/", `{"fullName": `, nil)
	require.NoError(t, env.routers.SubmitContact(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid JSON payload."}`, rec.Body.String())
	env.contact.AssertNotCalled(t, "SubmitMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitContact_ValidationDetail(t *testing.T) {
	env := newTestEnv()

	env.contact.On("SubmitMessage", mock.Anything, mock.Anything, mock.AnythingOfType("dto.ContactMessageInput")).
		Return(&contactservice.InvalidInputError{Detail: "Invalid email address."})

	body := `{"fullName":"Jane Doe","email":"bad-email","message":"I would like a website."}`
	rec, c := env.request(http.MethodPost, "/contact/", body, nil)
	require.NoError(t, env.routers.SubmitContact(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid email address."}`, rec.Body.String())
}

func TestSubmitContact_RateLimited(t *testing.T) {
	env := newTestEnv()

	env.contact.On("SubmitMessage", mock.Anything, mock.Anything, mock.AnythingOfType("dto.ContactMessageInput")).
		Return(contactservice.ErrRateLimited)

	body := `{"fullName":"Jane Doe","email":"jane@example.com","message":"I would like a website."}`
	rec, c := env.request(http.MethodPost, "/contact/", body, nil)
	require.NoError(t, env.routers.SubmitContact(c))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"detail":"Rate limit exceeded. Please try again later."}`, rec.Body.String())
}

func TestGetBlog_Found(t *testing.T) {
	env := newTestEnv()

	blog := models.Blog{
		ID:    uuid.New(),
		Title: "My First Post",
		Slug:  "my-first-post",
	}
	resp := dto.NewBlogResponse(&blog)
	env.blog.On("GetBlogBySlug", mock.Anything, "my-first-post").Return(&resp, nil)

	rec, c := env.request(http.MethodGet, "/blogs/my-first-post/", "", nil)
	c.SetParamNames("slug")
	c.SetParamValues("my-first-post")
	require.NoError(t, env.routers.GetBlog(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "my-first-post", out["slug"])
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *MockAuthService)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"email":"admin@example.com","password":"secret"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "admin@example.com", "secret").
					Return("signed-token", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"admin@example.com","password":"wrong"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "admin@example.com", "wrong").
					Return("", authservice.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       `{"email":"admin@example.com"}`,
			mockSetup:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			tt.mockSetup(env.auth)

			rec, c := env.request(http.MethodPost, "/api/v1/login", tt.body, nil)
			require.NoError(t, env.routers.Login(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateProject_DuplicateSlug(t *testing.T) {
	env := newTestEnv()

	env.portfolio.On("CreateProject", mock.Anything, mock.AnythingOfType("dto.CreateProjectRequest")).
		Return(nil, storage.ErrDuplicateSlug)

	body := `{"title":"Test One","short_desc":"desc","description":"full","category":"fullstack"}`
	rec, c := env.request(http.MethodPost, "/api/v1/admin/projects", body, nil)
	require.NoError(t, env.routers.CreateProject(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateProject_InvalidCategory(t *testing.T) {
	env := newTestEnv()

	body := `{"title":"Test One","short_desc":"desc","description":"full","category":"desktop"}`
	rec, c := env.request(http.MethodPost, "/api/v1/admin/projects", body, nil)
	require.NoError(t, env.routers.CreateProject(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.portfolio.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}
