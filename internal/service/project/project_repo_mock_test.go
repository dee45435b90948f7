package project

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc                func(ctx context.Context, ideaID int64, name string) (*domain.Project, error)
	CreateStepFunc            func(ctx context.Context, step *domain.ProjectStep) (*domain.ProjectStep, error)
	ListAllFunc               func(ctx context.Context) ([]domain.Project, error)
	ListByOfficeFunc          func(ctx context.Context, officeID int64) ([]domain.Project, error)
	ListContributionStepsFunc func(ctx context.Context) ([]domain.ContributionSteps, error)
	UpsertContributionFunc    func(ctx context.Context, projectID int64, officeID int64) (*domain.Contribution, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			IdeaID int64
			Name   string
		}
		CreateStep []struct {
			Ctx  context.Context
			Step *domain.ProjectStep
		}
		ListAll []struct{ Ctx context.Context }
		ListByOffice []struct {
			Ctx      context.Context
			OfficeID int64
		}
		ListContributionSteps []struct{ Ctx context.Context }
		UpsertContribution []struct {
			Ctx       context.Context
			ProjectID int64
			OfficeID  int64
		}
	}
	lockCreate                sync.RWMutex
	lockCreateStep            sync.RWMutex
	lockListAll               sync.RWMutex
	lockListByOffice          sync.RWMutex
	lockListContributionSteps sync.RWMutex
	lockUpsertContribution    sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, ideaID int64, name string) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID int64
		Name   string
	}{
		Ctx:    ctx,
		IdeaID: ideaID,
		Name:   name,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ideaID, name)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	IdeaID int64
	Name   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) CreateStep(ctx context.Context, step *domain.ProjectStep) (*domain.ProjectStep, error) {
	if mock.CreateStepFunc == nil {
		panic("projectRepoMock.CreateStepFunc: method is nil but projectRepo.CreateStep was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Step *domain.ProjectStep
	}{
		Ctx:  ctx,
		Step: step,
	}
	mock.lockCreateStep.Lock()
	mock.calls.CreateStep = append(mock.calls.CreateStep, callInfo)
	mock.lockCreateStep.Unlock()
	return mock.CreateStepFunc(ctx, step)
}

func (mock *projectRepoMock) CreateStepCalls() []struct {
	Ctx  context.Context
	Step *domain.ProjectStep
} {
	mock.lockCreateStep.RLock()
	calls := mock.calls.CreateStep
	mock.lockCreateStep.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListAll(ctx context.Context) ([]domain.Project, error) {
	if mock.ListAllFunc == nil {
		panic("projectRepoMock.ListAllFunc: method is nil but projectRepo.ListAll was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *projectRepoMock) ListAllCalls() []struct{ Ctx context.Context } {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListByOffice(ctx context.Context, officeID int64) ([]domain.Project, error) {
	if mock.ListByOfficeFunc == nil {
		panic("projectRepoMock.ListByOfficeFunc: method is nil but projectRepo.ListByOffice was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OfficeID int64
	}{
		Ctx:      ctx,
		OfficeID: officeID,
	}
	mock.lockListByOffice.Lock()
	mock.calls.ListByOffice = append(mock.calls.ListByOffice, callInfo)
	mock.lockListByOffice.Unlock()
	return mock.ListByOfficeFunc(ctx, officeID)
}

func (mock *projectRepoMock) ListByOfficeCalls() []struct {
	Ctx      context.Context
	OfficeID int64
} {
	mock.lockListByOffice.RLock()
	calls := mock.calls.ListByOffice
	mock.lockListByOffice.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListContributionSteps(ctx context.Context) ([]domain.ContributionSteps, error) {
	if mock.ListContributionStepsFunc == nil {
		panic("projectRepoMock.ListContributionStepsFunc: method is nil but projectRepo.ListContributionSteps was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListContributionSteps.Lock()
	mock.calls.ListContributionSteps = append(mock.calls.ListContributionSteps, callInfo)
	mock.lockListContributionSteps.Unlock()
	return mock.ListContributionStepsFunc(ctx)
}

func (mock *projectRepoMock) ListContributionStepsCalls() []struct{ Ctx context.Context } {
	mock.lockListContributionSteps.RLock()
	calls := mock.calls.ListContributionSteps
	mock.lockListContributionSteps.RUnlock()
	return calls
}

func (mock *projectRepoMock) UpsertContribution(ctx context.Context, projectID int64, officeID int64) (*domain.Contribution, error) {
	if mock.UpsertContributionFunc == nil {
		panic("projectRepoMock.UpsertContributionFunc: method is nil but projectRepo.UpsertContribution was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID int64
		OfficeID  int64
	}{
		Ctx:       ctx,
		ProjectID: projectID,
		OfficeID:  officeID,
	}
	mock.lockUpsertContribution.Lock()
	mock.calls.UpsertContribution = append(mock.calls.UpsertContribution, callInfo)
	mock.lockUpsertContribution.Unlock()
	return mock.UpsertContributionFunc(ctx, projectID, officeID)
}

func (mock *projectRepoMock) UpsertContributionCalls() []struct {
	Ctx       context.Context
	ProjectID int64
	OfficeID  int64
} {
	mock.lockUpsertContribution.RLock()
	calls := mock.calls.UpsertContribution
	mock.lockUpsertContribution.RUnlock()
	return calls
}
