package service

import (
	"context"

	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/modules/auth/dto"
	"event-portal/modules/session/entity"
	"event-portal/modules/session/reducer"
	sessionservice "event-portal/modules/session/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, current entity.Session, req *dto.LoginRequest) (*dto.SessionResponse, *errors.AppError)
	SendOTP(ctx context.Context, req *dto.SendOTPRequest) *errors.AppError
	// VerifyOTP returns a nil response when the API verified the code without signing anyone in.
	VerifyOTP(ctx context.Context, current entity.Session, req *dto.VerifyOTPRequest) (*dto.SessionResponse, *errors.AppError)
	RequestPasswordReset(ctx context.Context, req *dto.RequestResetRequest) *errors.AppError
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) *errors.AppError
	VerifyEmail(ctx context.Context, token string) *errors.AppError
	Logout(ctx context.Context, sess entity.Session) *errors.AppError
}

type AuthService struct {
	api       backend.AuthAPI
	companies backend.CompanyAPI
	sessions  sessionservice.SessionServiceInterface
}

func NewAuthService(api backend.AuthAPI, companies backend.CompanyAPI, sessions sessionservice.SessionServiceInterface) *AuthService {
	return &AuthService{api: api, companies: companies, sessions: sessions}
}

// RedirectFor is where a freshly signed-in user lands.
func RedirectFor(u *backend.User) string {
	switch {
	case u == nil:
		return constants.RouteLogin
	case u.Role.IsOrganizer() && u.HasCompany():
		return constants.RouteAdminDashboard
	case u.Role.IsOrganizer():
		return constants.RouteOnboarding
	default:
		return constants.RouteParticipantDashboard
	}
}

func (s *AuthService) Login(ctx context.Context, current entity.Session, req *dto.LoginRequest) (*dto.SessionResponse, *errors.AppError) {
	loginCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	result, err := s.api.Login(loginCtx, &backend.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		logger.Warn("AuthService:Login:Login", "email", req.Email, "error", err)
		return nil, backend.ToAppError(err, "Login failed")
	}
	if result.User == nil || result.Token == "" {
		return nil, errors.NewAppError(errors.ErrBackendUnavailable, "Login failed", nil)
	}
	return s.startSession(ctx, current, result)
}

func (s *AuthService) SendOTP(ctx context.Context, req *dto.SendOTPRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.api.SendOTP(ctx, &backend.OTPInput{Email: req.Email, Purpose: req.Purpose}); err != nil {
		return backend.ToAppError(err, "Failed to send OTP")
	}
	logger.Info("AuthService:SendOTP:Sent", "purpose", req.Purpose)
	return nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, current entity.Session, req *dto.VerifyOTPRequest) (*dto.SessionResponse, *errors.AppError) {
	verifyCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	in := &backend.VerifyOTPInput{Email: req.Email, Code: req.Code, Role: req.Role, Name: req.Name}
	result, err := s.api.VerifyOTP(verifyCtx, in)
	if err != nil {
		return nil, backend.ToAppError(err, "Invalid OTP")
	}
	if result == nil || result.User == nil || result.Token == "" {
		return nil, nil
	}
	return s.startSession(ctx, current, result)
}

// startSession signs the user into a fresh session id and drops any previous one.
// Company roles get their company snapshot cached; if that fetch fails the dashboard loads it later.
func (s *AuthService) startSession(ctx context.Context, current entity.Session, result *backend.AuthResult) (*dto.SessionResponse, *errors.AppError) {
	if current.SignedIn() {
		if appErr := s.sessions.Clear(ctx, current); appErr != nil {
			logger.Warn("AuthService:StartSession:ClearPrevious", "session", current.ID, "error", appErr)
		}
	}

	opened := s.sessions.Open()
	next := reducer.SignIn(opened, result.User, result.Token)

	if next.User.Role.IsOrganizer() && next.User.HasCompany() {
		companyCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
		company, err := s.companies.GetCompany(companyCtx, result.Token, *next.User.CompanyID)
		cancel()
		if err != nil {
			logger.Warn("AuthService:StartSession:GetCompany", "company_id", *next.User.CompanyID, "error", err)
		} else {
			next = reducer.SetCompany(next, company)
		}
	}

	if appErr := s.sessions.Commit(ctx, opened, next); appErr != nil {
		return nil, appErr
	}
	token, appErr := s.sessions.IssueToken(next)
	if appErr != nil {
		return nil, appErr
	}
	logger.Info("AuthService:StartSession:SignedIn", "session", next.ID, "user_id", next.User.ID, "role", next.User.Role)

	return &dto.SessionResponse{
		Token:    token,
		User:     dto.ToSessionUser(next.User),
		Redirect: RedirectFor(next.User),
	}, nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, req *dto.RequestResetRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.api.RequestPasswordReset(ctx, req.Email); err != nil {
		return backend.ToAppError(err, "Failed to send reset email")
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.api.ResetPassword(ctx, &backend.ResetPasswordInput{Token: req.Token, NewPassword: req.NewPassword}); err != nil {
		return backend.ToAppError(err, "Failed to reset password")
	}
	return nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.api.VerifyEmail(ctx, token); err != nil {
		return backend.ToAppError(err, "Invalid Token or User Already Verified")
	}
	return nil
}

// Logout clears user, company and events. Anonymous sessions have nothing to clear.
func (s *AuthService) Logout(ctx context.Context, sess entity.Session) *errors.AppError {
	if !sess.SignedIn() && sess.Company == nil && sess.Events == nil {
		return nil
	}
	if appErr := s.sessions.Clear(ctx, sess); appErr != nil {
		return appErr
	}
	logger.Info("AuthService:Logout:Cleared", "session", sess.ID)
	return nil
}
