package tracker

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Project statuses.
const (
	ProjectNotStarted = "not_started"
	ProjectInProgress = "in_progress"
	ProjectCompleted  = "completed"
)

// ProjectStatuses lists the valid project status values.
var ProjectStatuses = []string{ProjectNotStarted, ProjectInProgress, ProjectCompleted}

// Task statuses.
const (
	TaskTodo       = "todo"
	TaskOpen       = "open"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// TaskStatuses lists the valid task status values.
var TaskStatuses = []string{TaskTodo, TaskOpen, TaskInProgress, TaskCompleted}

// Task priorities.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// TaskPriorities lists the valid task priority values.
var TaskPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Project is a body of work with a manager and members.
type Project struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Version     string     `json:"version,omitempty"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	FilePath    string     `json:"file_path,omitempty"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	ManagerID   uuid.UUID  `json:"manager_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Task is a unit of work within a project, assigned to a user.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	AssigneeID  uuid.UUID  `json:"assignee_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	FilePath    string     `json:"file_path,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Comment is a note on a task.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	ProjectID uuid.UUID `json:"project_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProjectParams carries new-project data.
type CreateProjectParams struct {
	Name        string
	Version     string
	Title       string
	Description string
	FilePath    string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
	ManagerID   uuid.UUID
}

// UpdateProjectParams carries project updates; empty strings and nil dates
// leave fields unchanged.
type UpdateProjectParams struct {
	Name        string
	Version     string
	Title       string
	Description string
	FilePath    string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
}

// CreateTaskParams carries new-task data.
type CreateTaskParams struct {
	ProjectID   uuid.UUID
	AssigneeID  uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Status      string
	Priority    string
	FilePath    string
}

// UpdateTaskParams carries task updates; empty strings and nil values leave
// fields unchanged, except AssigneeID which reassigns when non-zero.
type UpdateTaskParams struct {
	AssigneeID  uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Status      string
	Priority    string
	FilePath    string
}

// CreateCommentParams carries new-comment data.
type CreateCommentParams struct {
	TaskID   uuid.UUID
	AuthorID uuid.UUID
	Title    string
	Content  string
}

// Storage is the persistence surface the tracker depends on.
// Implementations map missing rows to the package's not-found sentinels,
// and foreign-key violations to ErrHasDependents (deletes) or
// ErrInvalidReference (creates referencing missing rows).
type Storage interface {
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	ListProjects(ctx context.Context) ([]Project, error)
	ListProjectsByManager(ctx context.Context, managerID uuid.UUID) ([]Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error

	AddMember(ctx context.Context, projectID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)

	CreateTask(ctx context.Context, t *Task) error
	GetTask(ctx context.Context, id uuid.UUID) (*Task, error)
	ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]Task, error)
	ListTasksByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]Task, error)
	UpdateTask(ctx context.Context, t *Task) error
	DeleteTask(ctx context.Context, id uuid.UUID) error

	CreateComment(ctx context.Context, c *Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*Comment, error)
	ListCommentsByTask(ctx context.Context, taskID uuid.UUID) ([]Comment, error)
	ListCommentsByAuthor(ctx context.Context, authorID uuid.UUID) ([]Comment, error)
	UpdateComment(ctx context.Context, c *Comment) error
	DeleteComment(ctx context.Context, id uuid.UUID) error
}
