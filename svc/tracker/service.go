package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub/pkg/sanitizer"
	"github.com/taskhub/taskhub/pkg/validator"
)

// Service implements project, task, and comment management with membership
// tracking. Referential integrity is enforced by the storage layer; the
// service validates input and enum values before anything hits storage.
type Service struct {
	storage Storage
	logger  *slog.Logger
}

// Option is a functional option for Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New creates the tracker service.
func New(storage Storage, opts ...Option) (*Service, error) {
	if storage == nil {
		return nil, errors.New("tracker: storage is required")
	}

	s := &Service{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// CreateProject validates and stores a new project. The manager is added as
// the first member.
func (s *Service) CreateProject(ctx context.Context, params CreateProjectParams) (*Project, error) {
	name := sanitizer.Trim(params.Name)
	status := params.Status
	if status == "" {
		status = ProjectNotStarted
	}

	if err := validator.Apply(
		validator.Required("name", name),
		validator.MaxLen("name", name, 128),
		validator.InList("status", status, ProjectStatuses),
	); err != nil {
		return nil, err
	}

	now := time.Now()
	project := &Project{
		ID:          uuid.New(),
		Name:        name,
		Version:     sanitizer.Trim(params.Version),
		Title:       sanitizer.Trim(params.Title),
		Description: params.Description,
		FilePath:    params.FilePath,
		Status:      status,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		ManagerID:   params.ManagerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	if err := s.storage.AddMember(ctx, project.ID, project.ManagerID); err != nil && !errors.Is(err, ErrAlreadyMember) {
		return nil, err
	}

	return project, nil
}

// GetProject fetches one project.
func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.storage.GetProject(ctx, id)
}

// ListProjects fetches all projects.
func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	return s.storage.ListProjects(ctx)
}

// ListProjectsByManager fetches projects managed by the given user.
func (s *Service) ListProjectsByManager(ctx context.Context, managerID uuid.UUID) ([]Project, error) {
	return s.storage.ListProjectsByManager(ctx, managerID)
}

// UpdateProject applies non-empty fields from params.
func (s *Service) UpdateProject(ctx context.Context, id uuid.UUID, params UpdateProjectParams) (*Project, error) {
	project, err := s.storage.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := sanitizer.Trim(params.Name); name != "" {
		if err := validator.Apply(validator.MaxLen("name", name, 128)); err != nil {
			return nil, err
		}
		project.Name = name
	}
	if params.Version != "" {
		project.Version = sanitizer.Trim(params.Version)
	}
	if params.Title != "" {
		project.Title = sanitizer.Trim(params.Title)
	}
	if params.Description != "" {
		project.Description = params.Description
	}
	if params.FilePath != "" {
		project.FilePath = params.FilePath
	}
	if params.Status != "" {
		if err := validator.Apply(validator.InList("status", params.Status, ProjectStatuses)); err != nil {
			return nil, err
		}
		project.Status = params.Status
	}
	if params.StartDate != nil {
		project.StartDate = params.StartDate
	}
	if params.EndDate != nil {
		project.EndDate = params.EndDate
	}
	project.UpdatedAt = time.Now()

	if err := s.storage.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project. Fails with ErrHasDependents while tasks,
// comments, or memberships still reference it.
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.storage.DeleteProject(ctx, id)
}

// AddMember adds a user to the project.
func (s *Service) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	if _, err := s.storage.GetProject(ctx, projectID); err != nil {
		return err
	}
	return s.storage.AddMember(ctx, projectID, userID)
}

// RemoveMember removes a user from the project.
func (s *Service) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	if _, err := s.storage.GetProject(ctx, projectID); err != nil {
		return err
	}
	return s.storage.RemoveMember(ctx, projectID, userID)
}

// ListMembers fetches member IDs of the project.
func (s *Service) ListMembers(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	if _, err := s.storage.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.storage.ListMembers(ctx, projectID)
}

// CreateTask validates and stores a new task within a project.
func (s *Service) CreateTask(ctx context.Context, params CreateTaskParams) (*Task, error) {
	title := sanitizer.Trim(params.Title)
	status := params.Status
	if status == "" {
		status = TaskTodo
	}
	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	if err := validator.Apply(
		validator.Required("title", title),
		validator.MaxLen("title", title, 256),
		validator.InList("status", status, TaskStatuses),
		validator.InList("priority", priority, TaskPriorities),
	); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetProject(ctx, params.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &Task{
		ID:          uuid.New(),
		ProjectID:   params.ProjectID,
		AssigneeID:  params.AssigneeID,
		Title:       title,
		Description: params.Description,
		DueDate:     params.DueDate,
		Status:      status,
		Priority:    priority,
		FilePath:    params.FilePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask fetches one task.
func (s *Service) GetTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	return s.storage.GetTask(ctx, id)
}

// ListTasksByProject fetches tasks in a project.
func (s *Service) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]Task, error) {
	if _, err := s.storage.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.storage.ListTasksByProject(ctx, projectID)
}

// ListTasksByAssignee fetches tasks assigned to a user, newest first.
func (s *Service) ListTasksByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]Task, error) {
	return s.storage.ListTasksByAssignee(ctx, assigneeID)
}

// UpdateTask applies non-empty fields from params.
func (s *Service) UpdateTask(ctx context.Context, id uuid.UUID, params UpdateTaskParams) (*Task, error) {
	task, err := s.storage.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := sanitizer.Trim(params.Title); title != "" {
		if err := validator.Apply(validator.MaxLen("title", title, 256)); err != nil {
			return nil, err
		}
		task.Title = title
	}
	if params.Description != "" {
		task.Description = params.Description
	}
	if params.DueDate != nil {
		task.DueDate = params.DueDate
	}
	if params.Status != "" {
		if err := validator.Apply(validator.InList("status", params.Status, TaskStatuses)); err != nil {
			return nil, err
		}
		task.Status = params.Status
	}
	if params.Priority != "" {
		if err := validator.Apply(validator.InList("priority", params.Priority, TaskPriorities)); err != nil {
			return nil, err
		}
		task.Priority = params.Priority
	}
	if params.AssigneeID != uuid.Nil {
		task.AssigneeID = params.AssigneeID
	}
	if params.FilePath != "" {
		task.FilePath = params.FilePath
	}
	task.UpdatedAt = time.Now()

	if err := s.storage.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task. Fails with ErrHasDependents while comments
// reference it.
func (s *Service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return s.storage.DeleteTask(ctx, id)
}

// CreateComment validates and stores a new comment on a task. The comment
// inherits the task's project.
func (s *Service) CreateComment(ctx context.Context, params CreateCommentParams) (*Comment, error) {
	content := sanitizer.Trim(params.Content)
	if err := validator.Apply(
		validator.Required("content", content),
		validator.MaxLen("content", content, 4000),
	); err != nil {
		return nil, err
	}

	task, err := s.storage.GetTask(ctx, params.TaskID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &Comment{
		ID:        uuid.New(),
		TaskID:    task.ID,
		ProjectID: task.ProjectID,
		AuthorID:  params.AuthorID,
		Title:     sanitizer.Trim(params.Title),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComment fetches one comment.
func (s *Service) GetComment(ctx context.Context, id uuid.UUID) (*Comment, error) {
	return s.storage.GetComment(ctx, id)
}

// ListCommentsByTask fetches comments on a task, oldest first.
func (s *Service) ListCommentsByTask(ctx context.Context, taskID uuid.UUID) ([]Comment, error) {
	if _, err := s.storage.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	return s.storage.ListCommentsByTask(ctx, taskID)
}

// ListCommentsByAuthor fetches a user's comments, oldest first.
func (s *Service) ListCommentsByAuthor(ctx context.Context, authorID uuid.UUID) ([]Comment, error) {
	return s.storage.ListCommentsByAuthor(ctx, authorID)
}

// UpdateComment updates the comment's title and content.
func (s *Service) UpdateComment(ctx context.Context, id uuid.UUID, title, content string) (*Comment, error) {
	comment, err := s.storage.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if content = sanitizer.Trim(content); content != "" {
		if err := validator.Apply(validator.MaxLen("content", content, 4000)); err != nil {
			return nil, err
		}
		comment.Content = content
	}
	if title = sanitizer.Trim(title); title != "" {
		comment.Title = title
	}
	comment.UpdatedAt = time.Now()

	if err := s.storage.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment.
func (s *Service) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return s.storage.DeleteComment(ctx, id)
}
