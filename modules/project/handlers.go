package project

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub/handler"
	"github.com/taskhub/taskhub/pkg/jwt"
	"github.com/taskhub/taskhub/svc/tracker"
)

type emptyRequest struct{}

type projectIDRequest struct {
	ID uuid.UUID `path:"id"`
}

type createProjectRequest struct {
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	FilePath    string     `json:"file_path"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ManagerID   uuid.UUID  `json:"manager_id"`
}

type updateProjectRequest struct {
	ID          uuid.UUID  `path:"id"`
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	FilePath    string     `json:"file_path"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type memberRequest struct {
	ID     uuid.UUID `path:"id"`
	UserID uuid.UUID `json:"user_id"`
}

type removeMemberRequest struct {
	ID     uuid.UUID `path:"id"`
	UserID uuid.UUID `path:"userId"`
}

type taskIDRequest struct {
	TaskID uuid.UUID `path:"taskId"`
}

type createTaskRequest struct {
	ProjectID   uuid.UUID  `path:"id"`
	AssigneeID  uuid.UUID  `json:"assignee_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	FilePath    string     `json:"file_path"`
}

type updateTaskRequest struct {
	TaskID      uuid.UUID  `path:"taskId"`
	AssigneeID  uuid.UUID  `json:"assignee_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	FilePath    string     `json:"file_path"`
}

type userIDRequest struct {
	UserID uuid.UUID `path:"userId"`
}

type commentIDRequest struct {
	CommentID uuid.UUID `path:"commentId"`
}

type createCommentRequest struct {
	TaskID  uuid.UUID `path:"taskId"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

type updateCommentRequest struct {
	CommentID uuid.UUID `path:"commentId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// callerID resolves the authenticated account from the session claims the
// jwt middleware stored in the request context.
func callerID(ctx handler.Context) (uuid.UUID, error) {
	claims, ok := jwt.GetClaims(ctx)
	if !ok {
		return uuid.Nil, handler.ErrUnauthorized
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, handler.ErrUnauthorized
	}
	return id, nil
}

func (s *Service) createProject(ctx handler.Context, req createProjectRequest) handler.Response {
	p, err := s.tracker.CreateProject(ctx, tracker.CreateProjectParams{
		Name:        req.Name,
		Version:     req.Version,
		Title:       req.Title,
		Description: req.Description,
		FilePath:    req.FilePath,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(p, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) listProjects(ctx handler.Context, _ emptyRequest) handler.Response {
	projects, err := s.tracker.ListProjects(ctx)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(projects)
}

func (s *Service) getProject(ctx handler.Context, req projectIDRequest) handler.Response {
	p, err := s.tracker.GetProject(ctx, req.ID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(p)
}

func (s *Service) updateProject(ctx handler.Context, req updateProjectRequest) handler.Response {
	p, err := s.tracker.UpdateProject(ctx, req.ID, tracker.UpdateProjectParams{
		Name:        req.Name,
		Version:     req.Version,
		Title:       req.Title,
		Description: req.Description,
		FilePath:    req.FilePath,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(p)
}

func (s *Service) deleteProject(ctx handler.Context, req projectIDRequest) handler.Response {
	if err := s.tracker.DeleteProject(ctx, req.ID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "project deleted"})
}

func (s *Service) listMembers(ctx handler.Context, req projectIDRequest) handler.Response {
	members, err := s.tracker.ListMembers(ctx, req.ID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(members)
}

func (s *Service) addMember(ctx handler.Context, req memberRequest) handler.Response {
	if err := s.tracker.AddMember(ctx, req.ID, req.UserID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "member added"}, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) removeMember(ctx handler.Context, req removeMemberRequest) handler.Response {
	if err := s.tracker.RemoveMember(ctx, req.ID, req.UserID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "member removed"})
}

func (s *Service) listManagedProjects(ctx handler.Context, req userIDRequest) handler.Response {
	projects, err := s.tracker.ListProjectsByManager(ctx, req.UserID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(projects)
}

func (s *Service) listAssignedTasks(ctx handler.Context, req userIDRequest) handler.Response {
	tasks, err := s.tracker.ListTasksByAssignee(ctx, req.UserID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(tasks)
}

func (s *Service) listAuthoredComments(ctx handler.Context, req userIDRequest) handler.Response {
	comments, err := s.tracker.ListCommentsByAuthor(ctx, req.UserID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(comments)
}

func (s *Service) listTasks(ctx handler.Context, req projectIDRequest) handler.Response {
	tasks, err := s.tracker.ListTasksByProject(ctx, req.ID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(tasks)
}

func (s *Service) createTask(ctx handler.Context, req createTaskRequest) handler.Response {
	t, err := s.tracker.CreateTask(ctx, tracker.CreateTaskParams{
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Priority:    req.Priority,
		FilePath:    req.FilePath,
	})
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(t, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) getTask(ctx handler.Context, req taskIDRequest) handler.Response {
	t, err := s.tracker.GetTask(ctx, req.TaskID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(t)
}

func (s *Service) updateTask(ctx handler.Context, req updateTaskRequest) handler.Response {
	t, err := s.tracker.UpdateTask(ctx, req.TaskID, tracker.UpdateTaskParams{
		AssigneeID:  req.AssigneeID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Priority:    req.Priority,
		FilePath:    req.FilePath,
	})
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(t)
}

func (s *Service) deleteTask(ctx handler.Context, req taskIDRequest) handler.Response {
	if err := s.tracker.DeleteTask(ctx, req.TaskID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "task deleted"})
}

func (s *Service) listComments(ctx handler.Context, req taskIDRequest) handler.Response {
	comments, err := s.tracker.ListCommentsByTask(ctx, req.TaskID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(comments)
}

func (s *Service) createComment(ctx handler.Context, req createCommentRequest) handler.Response {
	author, err := callerID(ctx)
	if err != nil {
		return handler.JSONError(err)
	}

	c, err := s.tracker.CreateComment(ctx, tracker.CreateCommentParams{
		TaskID:   req.TaskID,
		AuthorID: author,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(c, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) updateComment(ctx handler.Context, req updateCommentRequest) handler.Response {
	c, err := s.tracker.UpdateComment(ctx, req.CommentID, req.Title, req.Content)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(c)
}

func (s *Service) deleteComment(ctx handler.Context, req commentIDRequest) handler.Response {
	if err := s.tracker.DeleteComment(ctx, req.CommentID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "comment deleted"})
}
