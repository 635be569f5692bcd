package applicationsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/careersync/careers/application"
	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/eventx"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/Abraxas-365/careersync/pkg/logx"
	"github.com/google/uuid"
)

// ApplicationService provides business operations for job applications
type ApplicationService struct {
	repo   application.Repository
	events eventx.Enqueuer
	now    func() time.Time
}

// NewApplicationService creates a new instance of the application service.
// events may be nil, in which case no events are emitted.
func NewApplicationService(repo application.Repository, events eventx.Enqueuer) *ApplicationService {
	return &ApplicationService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

// ListApplications returns the user's applications, newest first
func (s *ApplicationService) ListApplications(ctx context.Context, userID kernel.UserID) ([]*application.Application, error) {
	apps, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to fetch applications", errx.TypeInternal)
	}
	if apps == nil {
		apps = []*application.Application{}
	}
	return apps, nil
}

// CreateApplication validates the request and stores a new application
func (s *ApplicationService) CreateApplication(ctx context.Context, userID kernel.UserID, req application.ApplicationRequest) (*application.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	app := &application.Application{
		ID:        kernel.NewApplicationID(uuid.NewString()),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.ApplyTo(app)

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	logx.Infof("Application %s created for user %s (%s at %s)", app.ID, userID, app.JobTitle, app.CompanyName)
	eventx.Emit(ctx, s.events, application.EventCreated, userID, app)

	return app, nil
}

// UpdateApplication replaces every field of an application owned by the user
func (s *ApplicationService) UpdateApplication(ctx context.Context, userID kernel.UserID, id kernel.ApplicationID, req application.ApplicationRequest) (*application.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	app, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to fetch application", errx.TypeInternal)
	}

	req.ApplyTo(app)
	app.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, errx.Wrap(err, "failed to update application", errx.TypeInternal)
	}

	eventx.Emit(ctx, s.events, application.EventUpdated, userID, app)
	return app, nil
}

// DeleteApplication removes an application owned by the user
func (s *ApplicationService) DeleteApplication(ctx context.Context, userID kernel.UserID, id kernel.ApplicationID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return errx.Wrap(err, "failed to delete application", errx.TypeInternal)
	}

	logx.Infof("Application %s deleted for user %s", id, userID)
	eventx.Emit(ctx, s.events, application.EventDeleted, userID, application.DeletedPayload{ID: id})
	return nil
}

// GetAnalytics aggregates the applications applied within the range
func (s *ApplicationService) GetAnalytics(ctx context.Context, userID kernel.UserID, rangeValue string) (*application.Analytics, error) {
	since := application.ParseRange(rangeValue).Start(s.now())

	apps, err := s.repo.ListAppliedSince(ctx, userID, since)
	if err != nil {
		return nil, errx.Wrap(err, "failed to fetch analytics data", errx.TypeInternal)
	}
	return application.ComputeAnalytics(apps), nil
}

// GetStats counts every application of the user by status and month
func (s *ApplicationService) GetStats(ctx context.Context, userID kernel.UserID) (*application.Stats, error) {
	apps, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to fetch statistics", errx.TypeInternal)
	}
	return application.ComputeStats(apps), nil
}
