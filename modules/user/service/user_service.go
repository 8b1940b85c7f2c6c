package service

import (
	"context"

	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/modules/session/entity"
	"event-portal/modules/session/reducer"
	sessionservice "event-portal/modules/session/service"
	"event-portal/modules/user/dto"
)

// CompanyRefresher reloads the company snapshot after a profile change.
type CompanyRefresher interface {
	Refresh(ctx context.Context, sess entity.Session) (entity.Session, *errors.AppError)
}

type UserServiceInterface interface {
	UpdateMe(ctx context.Context, sess entity.Session, req *dto.UpdateMeRequest) (*dto.UserResponse, *errors.AppError)
	ChangePassword(ctx context.Context, sess entity.Session, req *dto.ChangePasswordRequest) *errors.AppError
	DeleteMe(ctx context.Context, sess entity.Session) *errors.AppError
}

type UserService struct {
	api       backend.UserAPI
	sessions  sessionservice.SessionServiceInterface
	companies CompanyRefresher
}

func NewUserService(api backend.UserAPI, sessions sessionservice.SessionServiceInterface, companies CompanyRefresher) *UserService {
	return &UserService{api: api, sessions: sessions, companies: companies}
}

// UpdateMe renames the caller. The session user is replaced with the API's copy.
func (s *UserService) UpdateMe(ctx context.Context, sess entity.Session, req *dto.UpdateMeRequest) (*dto.UserResponse, *errors.AppError) {
	updateCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.api.UpdateMe(updateCtx, sess.Token, req.Name)
	if err != nil {
		logger.Error("UserService:UpdateMe:UpdateMe", "user_id", sess.User.ID, "error", err)
		return nil, backend.ToAppError(err, "Update failed")
	}

	next := reducer.ReplaceUser(sess, user)
	if appErr := s.sessions.Commit(ctx, sess, next); appErr != nil {
		return nil, appErr
	}

	if next.Role().IsOrganizer() && s.companies != nil {
		if _, appErr := s.companies.Refresh(ctx, next); appErr != nil {
			logger.Warn("UserService:UpdateMe:RefreshCompany", "user_id", user.ID, "error", appErr)
		}
	}

	resp := dto.ToUserResponse(next.User)
	return &resp, nil
}

func (s *UserService) ChangePassword(ctx context.Context, sess entity.Session, req *dto.ChangePasswordRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	in := &backend.ChangePasswordInput{OldPassword: req.OldPassword, NewPassword: req.NewPassword}
	if err := s.api.ChangePassword(ctx, sess.Token, in); err != nil {
		return backend.ToAppError(err, "Change failed")
	}
	logger.Info("UserService:ChangePassword:Changed", "user_id", sess.User.ID)
	return nil
}

// DeleteMe removes the caller's account and then the whole session.
func (s *UserService) DeleteMe(ctx context.Context, sess entity.Session) *errors.AppError {
	deleteCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.api.DeleteUser(deleteCtx, sess.Token, sess.User.ID); err != nil {
		return backend.ToAppError(err, "Delete failed")
	}
	logger.Info("UserService:DeleteMe:Deleted", "user_id", sess.User.ID)

	if appErr := s.sessions.Clear(ctx, sess); appErr != nil {
		logger.Warn("UserService:DeleteMe:ClearSession", "session", sess.ID, "error", appErr)
	}
	return nil
}
