package services

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/services/prompt"
	"github.com/stretchr/testify/mock"
)

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) IsRepository(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockGitService) GetStagedChanges(ctx context.Context, excludePatterns []string) (*models.CommitInfo, error) {
	args := m.Called(ctx, excludePatterns)
	if info := args.Get(0); info != nil {
		return info.(*models.CommitInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGitService) CreateCommit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockGitService) HooksDir(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, req models.CompletionRequest, onEvent ports.StreamCallback) (*models.CompletionResponse, error) {
	args := m.Called(ctx, req, onEvent)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.CompletionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockJudge struct {
	mock.Mock
}

func (m *MockJudge) Classify(ctx context.Context, diff string, catalog []prompt.TypeEntry) (*models.JudgeReport, error) {
	args := m.Called(ctx, diff, catalog)
	if report := args.Get(0); report != nil {
		return report.(*models.JudgeReport), args.Error(1)
	}
	return nil, args.Error(1)
}
