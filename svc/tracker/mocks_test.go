package tracker_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskhub/taskhub/svc/tracker"
)

// MockStorage is a mock implementation of tracker.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateProject(ctx context.Context, p *tracker.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStorage) GetProject(ctx context.Context, id uuid.UUID) (*tracker.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracker.Project), args.Error(1)
}

func (m *MockStorage) ListProjects(ctx context.Context) ([]tracker.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.Project), args.Error(1)
}

func (m *MockStorage) ListProjectsByManager(ctx context.Context, managerID uuid.UUID) ([]tracker.Project, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.Project), args.Error(1)
}

func (m *MockStorage) UpdateProject(ctx context.Context, p *tracker.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStorage) DeleteProject(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *MockStorage) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *MockStorage) ListMembers(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockStorage) CreateTask(ctx context.Context, t *tracker.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockStorage) GetTask(ctx context.Context, id uuid.UUID) (*tracker.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracker.Task), args.Error(1)
}

func (m *MockStorage) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]tracker.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.Task), args.Error(1)
}

func (m *MockStorage) ListTasksByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]tracker.Task, error) {
	args := m.Called(ctx, assigneeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.Task), args.Error(1)
}

func (m *MockStorage) UpdateTask(ctx context.Context, t *tracker.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockStorage) DeleteTask(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) CreateComment(ctx context.Context, c *tracker.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockStorage) GetComment(ctx context.Context, id uuid.UUID) (*tracker.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracker.Comment), args.Error(1)
}

func (m *MockStorage) ListCommentsByTask(ctx context.Context, taskID uuid.UUID) ([]tracker.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.Comment), args.Error(1)
}

func (m *MockStorage) ListCommentsByAuthor(ctx context.Context, authorID uuid.UUID) ([]tracker.Comment, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.Comment), args.Error(1)
}

func (m *MockStorage) UpdateComment(ctx context.Context, c *tracker.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockStorage) DeleteComment(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
