package service

import (
	"context"
	"encoding/json"
	"time"

	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/core/queue"
	"event-portal/modules/company/dto"
	"event-portal/modules/company/mapper"
	"event-portal/modules/session/entity"
	"event-portal/modules/session/reducer"
	sessionservice "event-portal/modules/session/service"

	"github.com/google/uuid"
)

type CompanyServiceInterface interface {
	CreateCompany(ctx context.Context, sess entity.Session, req *dto.CompanyRequest) (*dto.CompanyResponse, *errors.AppError)
	GetCompany(ctx context.Context, sess entity.Session) (*dto.CompanyResponse, *errors.AppError)
	UpdateCompany(ctx context.Context, sess entity.Session, req *dto.CompanyRequest) (*dto.CompanyResponse, *errors.AppError)
	InviteOrganizer(ctx context.Context, sess entity.Session, req *dto.InviteRequest) *errors.AppError
	RemoveMember(ctx context.Context, sess entity.Session, userID int64) *errors.AppError

	Dashboard(ctx context.Context, sess entity.Session, query DashboardQuery) (*dto.AdminDashboardResponse, *errors.AppError)
	Onboarding(ctx context.Context, sess entity.Session) (*dto.OnboardingResponse, *errors.AppError)

	Refresh(ctx context.Context, sess entity.Session) (entity.Session, *errors.AppError)
	ScheduleRefresh(ctx context.Context, sess entity.Session)
	RefreshSession(ctx context.Context, sessionID uuid.UUID, companyID int64) *errors.AppError
}

type CompanyService struct {
	api      backend.CompanyAPI
	users    backend.UserAPI
	sessions sessionservice.SessionServiceInterface
	queue    queue.Client
}

// NewCompanyService accepts a nil queue. Scheduled refreshes then run inline.
func NewCompanyService(api backend.CompanyAPI, users backend.UserAPI, sessions sessionservice.SessionServiceInterface, q queue.Client) *CompanyService {
	return &CompanyService{api: api, users: users, sessions: sessions, queue: q}
}

type RefreshPayload struct {
	SessionID uuid.UUID `json:"sessionId"`
	CompanyID int64     `json:"companyId"`
}

func companyID(sess entity.Session) (int64, bool) {
	if sess.User.HasCompany() {
		return *sess.User.CompanyID, true
	}
	if sess.Company != nil && sess.Company.ID != 0 {
		return sess.Company.ID, true
	}
	return 0, false
}

// Refresh reloads the company snapshot. Sessions without a company are returned unchanged.
func (s *CompanyService) Refresh(ctx context.Context, sess entity.Session) (entity.Session, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	id, ok := companyID(sess)
	if !ok {
		return sess, nil
	}

	company, err := s.api.GetCompany(ctx, sess.Token, id)
	if err != nil {
		logger.Error("CompanyService:Refresh:GetCompany", "company_id", id, "error", err)
		return sess, backend.ToAppError(err, "Failed to refresh company")
	}

	next := reducer.SetCompany(sess, company)
	if appErr := s.sessions.Commit(ctx, sess, next); appErr != nil {
		return sess, appErr
	}
	return next, nil
}

// ScheduleRefresh hands the refresh to the worker, or runs it inline without a queue.
func (s *CompanyService) ScheduleRefresh(ctx context.Context, sess entity.Session) {
	id, ok := companyID(sess)
	if !ok {
		return
	}
	if s.queue == nil {
		if _, appErr := s.Refresh(ctx, sess); appErr != nil {
			logger.Warn("CompanyService:ScheduleRefresh:Inline", "session", sess.ID, "error", appErr)
		}
		return
	}

	payload, err := json.Marshal(RefreshPayload{SessionID: sess.ID, CompanyID: id})
	if err != nil {
		return
	}
	_, err = s.queue.Enqueue(ctx, queue.Task{Type: constants.TaskCompanyRefresh, Payload: payload}, queue.EnqueueOption{
		Queue:    constants.QueueDefault,
		Deadline: time.Now().Add(constants.CompanyRefreshDeadline),
	})
	if err != nil {
		logger.Warn("CompanyService:ScheduleRefresh:Enqueue", "session", sess.ID, "error", err)
	}
}

// RefreshSession is the worker side of ScheduleRefresh. Signed-out sessions and sessions
// that moved to another company are skipped.
func (s *CompanyService) RefreshSession(ctx context.Context, sessionID uuid.UUID, want int64) *errors.AppError {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to load session", err)
	}
	if !sess.SignedIn() {
		logger.Debug("CompanyService:RefreshSession:SignedOut", "session", sessionID)
		return nil
	}
	if id, ok := companyID(*sess); !ok || id != want {
		logger.Debug("CompanyService:RefreshSession:CompanyChanged", "session", sessionID, "company_id", want)
		return nil
	}
	_, appErr := s.Refresh(ctx, *sess)
	return appErr
}

func (s *CompanyService) CreateCompany(ctx context.Context, sess entity.Session, req *dto.CompanyRequest) (*dto.CompanyResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if sess.User.HasCompany() {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "You already belong to a company", nil)
	}
	var ownerID int64
	if sess.User.ProfileID != nil {
		ownerID = *sess.User.ProfileID
	}

	company, err := s.api.CreateCompany(ctx, sess.Token, mapper.ToCompanyInput(req, ownerID))
	if err != nil {
		return nil, backend.ToAppError(err, "Failed to create company. Please try again.")
	}
	logger.Info("CompanyService:CreateCompany:Created", "company_id", company.ID, "owner_id", ownerID)

	next := reducer.SetCompany(reducer.AssignCompany(sess, company.ID), company)
	if appErr := s.sessions.Commit(ctx, sess, next); appErr != nil {
		return nil, appErr
	}
	resp := mapper.ToCompanyResponse(company)
	return &resp, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, sess entity.Session) (*dto.CompanyResponse, *errors.AppError) {
	if _, ok := companyID(sess); !ok {
		return nil, errors.NewAppError(errors.ErrNotFound, "No company yet", nil)
	}
	next, appErr := s.Refresh(ctx, sess)
	if appErr != nil {
		return nil, appErr
	}
	resp := mapper.ToCompanyResponse(next.Company)
	return &resp, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, sess entity.Session, req *dto.CompanyRequest) (*dto.CompanyResponse, *errors.AppError) {
	id, ok := companyID(sess)
	if !ok {
		return nil, errors.NewAppError(errors.ErrNotFound, "No company yet", nil)
	}

	updateCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	updated, err := s.api.UpdateCompany(updateCtx, sess.Token, id, mapper.ToCompanyInput(req, 0))
	if err != nil {
		return nil, backend.ToAppError(err, "Failed to update company")
	}

	// the update body may omit events and members, so the full snapshot is reloaded
	next, appErr := s.Refresh(ctx, sess)
	if appErr != nil {
		resp := mapper.ToCompanyResponse(updated)
		return &resp, nil
	}
	resp := mapper.ToCompanyResponse(next.Company)
	return &resp, nil
}

func (s *CompanyService) InviteOrganizer(ctx context.Context, sess entity.Session, req *dto.InviteRequest) *errors.AppError {
	id, ok := companyID(sess)
	if !ok {
		return errors.NewAppError(errors.ErrNotFound, "No company yet", nil)
	}

	inviteCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	err := s.api.InviteOrganizer(inviteCtx, sess.Token, &backend.InviteInput{CompanyID: id, Email: req.Email, Role: req.Role})
	if err != nil {
		return backend.ToAppError(err, "Failed to send invitation. Please try again.")
	}
	logger.Info("CompanyService:InviteOrganizer:Sent", "company_id", id, "role", req.Role)

	if _, appErr := s.Refresh(ctx, sess); appErr != nil {
		logger.Warn("CompanyService:InviteOrganizer:Refresh", "error", appErr)
	}
	return nil
}

// RemoveMember deletes a team member's account. Callers cannot remove themselves here.
func (s *CompanyService) RemoveMember(ctx context.Context, sess entity.Session, userID int64) *errors.AppError {
	if userID == sess.User.ID {
		return errors.NewAppError(errors.ErrInvalidInput, "Use account settings to delete your own account", nil)
	}

	deleteCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.users.DeleteUser(deleteCtx, sess.Token, userID); err != nil {
		return backend.ToAppError(err, "Something went wrong while deleting the user.")
	}
	logger.Info("CompanyService:RemoveMember:Deleted", "user_id", userID)

	s.ScheduleRefresh(ctx, sess)
	return nil
}

func (s *CompanyService) Onboarding(ctx context.Context, sess entity.Session) (*dto.OnboardingResponse, *errors.AppError) {
	if sess.User.HasCompany() && sess.Company == nil {
		next, appErr := s.Refresh(ctx, sess)
		if appErr != nil {
			return nil, appErr
		}
		sess = next
	}

	resp := &dto.OnboardingResponse{User: mapper.ToOnboardingUser(sess.User), HasCompany: sess.User.HasCompany()}
	if sess.Company != nil {
		c := mapper.ToCompanyResponse(sess.Company)
		resp.Company = &c
	}
	return resp, nil
}
