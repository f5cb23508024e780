package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"pro_portfolio/internal/domain/models"
	"pro_portfolio/internal/lib/logger/sl"
	"pro_portfolio/internal/lib/slug"
	"pro_portfolio/internal/repository"
	"pro_portfolio/internal/transport/http/dto"
)

// homeSkillPreference is the curated order for the landing page; missing
// names are backfilled with the strongest remaining core skills.
var homeSkillPreference = []string{"React", "Django", "Python", "PostgreSQL", "REST APIs"}

const homeSkillLimit = 5

type PortfolioService struct {
	log        *slog.Logger
	projects   repository.ProjectRepository
	skills     repository.SkillRepository
	experience repository.ExperienceRepository
	education  repository.EducationRepository
}

func NewPortfolioService(
	log *slog.Logger,
	projects repository.ProjectRepository,
	skills repository.SkillRepository,
	experience repository.ExperienceRepository,
	education repository.EducationRepository,
) *PortfolioService {
	return &PortfolioService{
		log:        log,
		projects:   projects,
		skills:     skills,
		experience: experience,
		education:  education,
	}
}

func (s *PortfolioService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	const op = "portfolio_service.CreateProject"
	log := s.log.With(slog.String("op", op))

	project := models.Project{
		Title:       req.Title,
		Slug:        req.Slug,
		ShortDesc:   req.ShortDesc,
		Description: req.Description,
		TechStack:   models.StringList(req.TechStack),
		ImageURL:    req.ImageURL,
		LiveURL:     req.LiveURL,
		GithubURL:   req.GithubURL,
		Category:    models.ProjectCategory(req.Category),
	}

	if err := project.Validate(); err != nil {
		log.Warn("project failed validation", sl.Err(err))
		return nil, err
	}

	if project.Slug == "" {
		project.Slug = slug.Make(project.Title)
		log.Debug("derived slug from title", slog.String("slug", project.Slug))
	}

	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	id, err := s.projects.SaveProject(ctx, project)
	if err != nil {
		log.Error("failed to save project", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	project.ID = id
	log.Info("project created", slog.String("id", id.String()), slog.String("slug", project.Slug))

	resp := dto.NewProjectResponse(&project)

	return &resp, nil
}

func (s *PortfolioService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	const op = "portfolio_service.ListProjects"
	log := s.log.With(slog.String("op", op))

	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		log.Error("failed to list projects", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, dto.NewProjectResponse(&projects[i]))
	}

	return out, nil
}

func (s *PortfolioService) GetProjectBySlug(ctx context.Context, slugVal string) (*dto.ProjectResponse, error) {
	const op = "portfolio_service.GetProjectBySlug"
	log := s.log.With(slog.String("op", op), slog.String("slug", slugVal))

	project, err := s.projects.GetProjectBySlug(ctx, slugVal)
	if err != nil {
		log.Info("project lookup failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.NewProjectResponse(project)

	return &resp, nil
}

func (s *PortfolioService) CreateSkill(ctx context.Context, req dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	const op = "portfolio_service.CreateSkill"
	log := s.log.With(slog.String("op", op))

	skill := models.Skill{
		Name:             req.Name,
		Category:         models.SkillCategory(req.Category),
		IconURL:          req.IconURL,
		ProficiencyLevel: req.ProficiencyLevel,
	}

	if err := skill.Validate(); err != nil {
		log.Warn("skill failed validation", sl.Err(err))
		return nil, err
	}

	id, err := s.skills.SaveSkill(ctx, skill)
	if err != nil {
		log.Error("failed to save skill", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	skill.ID = id
	log.Info("skill created", slog.String("id", id.String()), slog.String("name", skill.Name))

	resp := dto.NewSkillResponse(skill)

	return &resp, nil
}

func (s *PortfolioService) ListSkills(ctx context.Context) ([]dto.SkillResponse, error) {
	const op = "portfolio_service.ListSkills"
	log := s.log.With(slog.String("op", op))

	skills, err := s.skills.ListSkills(ctx)
	if err != nil {
		log.Error("failed to list skills", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.SkillResponse, 0, len(skills))
	for _, skill := range skills {
		out = append(out, dto.NewSkillResponse(skill))
	}

	return out, nil
}

// HomeSkills picks up to five skills for the landing page: preference names
// first, in preference order, then the highest-proficiency remaining
// frontend/backend/tools skills. Any failure degrades to an empty list.
func (s *PortfolioService) HomeSkills(ctx context.Context) (result []dto.SkillResponse, err error) {
	const op = "portfolio_service.HomeSkills"
	log := s.log.With(slog.String("op", op))

	defer func() {
		if r := recover(); r != nil {
			log.Error("home skill selection panicked", slog.Any("panic", r))
			result = nil
			err = fmt.Errorf("%s: panic: %v", op, r)
		}
	}()

	preferred, err := s.skills.SkillsByNames(ctx, homeSkillPreference)
	if err != nil {
		log.Error("failed to fetch preferred skills", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byName := make(map[string]models.Skill, len(preferred))
	for _, skill := range preferred {
		if _, ok := byName[skill.Name]; !ok {
			byName[skill.Name] = skill
		}
	}

	selected := make([]models.Skill, 0, homeSkillLimit)
	used := make(map[string]bool, homeSkillLimit)
	for _, name := range homeSkillPreference {
		if skill, ok := byName[name]; ok {
			selected = append(selected, skill)
			used[skill.ID.String()] = true
		}
	}

	if len(selected) < homeSkillLimit {
		all, err := s.skills.ListSkills(ctx)
		if err != nil {
			log.Error("failed to list skills for backfill", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		var fillers []models.Skill
		for _, skill := range all {
			if used[skill.ID.String()] {
				continue
			}
			switch skill.Category {
			case models.SkillCategoryFrontend, models.SkillCategoryBackend, models.SkillCategoryTools:
				fillers = append(fillers, skill)
			}
		}

		sort.SliceStable(fillers, func(i, j int) bool {
			return fillers[i].ProficiencyLevel > fillers[j].ProficiencyLevel
		})

		for _, skill := range fillers {
			if len(selected) >= homeSkillLimit {
				break
			}
			selected = append(selected, skill)
		}
	}

	out := make([]dto.SkillResponse, 0, len(selected))
	for _, skill := range selected {
		out = append(out, dto.NewSkillResponse(skill))
	}

	return out, nil
}

func (s *PortfolioService) CreateExperience(ctx context.Context, req dto.CreateExperienceRequest) (*models.Experience, error) {
	const op = "portfolio_service.CreateExperience"
	log := s.log.With(slog.String("op", op))

	experience := models.Experience{
		Title:        req.Title,
		Company:      req.Company,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Description:  req.Description,
		Achievements: models.StringList(req.Achievements),
	}

	if err := experience.Validate(); err != nil {
		log.Warn("experience failed validation", sl.Err(err))
		return nil, err
	}

	id, err := s.experience.SaveExperience(ctx, experience)
	if err != nil {
		log.Error("failed to save experience", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	experience.ID = id
	log.Info("experience created", slog.String("id", id.String()))

	return &experience, nil
}

func (s *PortfolioService) ListExperience(ctx context.Context) ([]models.Experience, error) {
	const op = "portfolio_service.ListExperience"
	log := s.log.With(slog.String("op", op))

	entries, err := s.experience.ListExperience(ctx)
	if err != nil {
		log.Error("failed to list experience", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

func (s *PortfolioService) CreateEducation(ctx context.Context, req dto.CreateEducationRequest) (*dto.EducationResponse, error) {
	const op = "portfolio_service.CreateEducation"
	log := s.log.With(slog.String("op", op))

	education := models.Education{
		Degree:      req.Degree,
		Institution: req.Institution,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
		Description: req.Description,
	}

	if err := education.Validate(); err != nil {
		log.Warn("education failed validation", sl.Err(err))
		return nil, err
	}

	id, err := s.education.SaveEducation(ctx, education)
	if err != nil {
		log.Error("failed to save education", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	education.ID = id
	log.Info("education created", slog.String("id", id.String()))

	resp := dto.NewEducationResponse(education)

	return &resp, nil
}

func (s *PortfolioService) ListEducation(ctx context.Context) ([]dto.EducationResponse, error) {
	const op = "portfolio_service.ListEducation"
	log := s.log.With(slog.String("op", op))

	entries, err := s.education.ListEducation(ctx)
	if err != nil {
		log.Error("failed to list education", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.EducationResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.NewEducationResponse(entry))
	}

	return out, nil
}
