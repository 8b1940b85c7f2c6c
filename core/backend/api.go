package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type EventAPI interface {
	ListEvents(ctx context.Context, token string, q EventQuery) (*EventPage, error)
	GetEvent(ctx context.Context, token string, id int64) (*Event, error)
	CreateEvent(ctx context.Context, token string, in *EventInput) (*Event, error)
	UpdateEvent(ctx context.Context, token string, id int64, in *EventInput) (*Event, error)
	DeleteEvent(ctx context.Context, token string, id int64) error
	MarkExpired(ctx context.Context, token string) error
	JoinEvent(ctx context.Context, token string, id int64, in *JoinInput) (*Participation, error)
	ListParticipants(ctx context.Context, token string, eventID int64) ([]Participant, error)
	ApproveParticipant(ctx context.Context, token string, eventID, participationID int64) error
}

type AuthAPI interface {
	Login(ctx context.Context, in *LoginInput) (*AuthResult, error)
	SendOTP(ctx context.Context, in *OTPInput) error
	VerifyOTP(ctx context.Context, in *VerifyOTPInput) (*AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, in *ResetPasswordInput) error
	VerifyEmail(ctx context.Context, token string) error
}

type CompanyAPI interface {
	CreateCompany(ctx context.Context, token string, in *CompanyInput) (*Company, error)
	GetCompany(ctx context.Context, token string, id int64) (*Company, error)
	UpdateCompany(ctx context.Context, token string, id int64, in *CompanyInput) (*Company, error)
	InviteOrganizer(ctx context.Context, token string, in *InviteInput) error
}

type UserAPI interface {
	UpdateMe(ctx context.Context, token string, name string) (*User, error)
	ChangePassword(ctx context.Context, token string, in *ChangePasswordInput) error
	DeleteUser(ctx context.Context, token string, id int64) error
}

// API is everything the portal needs from the REST API.
type API interface {
	EventAPI
	AuthAPI
	CompanyAPI
	UserAPI
}

var _ API = (*Client)(nil)

// ===================== Events =====================

func (c *Client) ListEvents(ctx context.Context, token string, q EventQuery) (*EventPage, error) {
	query := url.Values{}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	var page EventPage
	if err := c.do(ctx, token, http.MethodGet, "events", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetEvent(ctx context.Context, token string, id int64) (*Event, error) {
	var event Event
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("events/%d", id), nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, token string, in *EventInput) (*Event, error) {
	var event Event
	if err := c.do(ctx, token, http.MethodPost, "events", nil, in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, token string, id int64, in *EventInput) (*Event, error) {
	var event Event
	if err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("events/%d", id), nil, in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("events/%d", id), nil, nil, nil)
}

func (c *Client) MarkExpired(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodPatch, "events/mark-expired", nil, nil, nil)
}

// JoinEvent returns the created participation. The API may answer with an empty body,
// in which case the returned participation is nil.
func (c *Client) JoinEvent(ctx context.Context, token string, id int64, in *JoinInput) (*Participation, error) {
	var body struct {
		Participation *Participation `json:"participation"`
		Status        string         `json:"status"`
		ID            int64          `json:"id"`
		EventID       int64          `json:"eventId"`
	}
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("events/%d/join", id), nil, in, &body); err != nil {
		return nil, err
	}
	if body.Participation != nil {
		return body.Participation, nil
	}
	if body.Status != "" {
		return &Participation{ID: body.ID, EventID: id, Status: ParticipationStatus(body.Status)}, nil
	}
	return nil, nil
}

func (c *Client) ListParticipants(ctx context.Context, token string, eventID int64) ([]Participant, error) {
	var participants []Participant
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("events/%d/participants", eventID), nil, nil, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (c *Client) ApproveParticipant(ctx context.Context, token string, eventID, participationID int64) error {
	path := fmt.Sprintf("events/%d/participants/%d/approve", eventID, participationID)
	return c.do(ctx, token, http.MethodPost, path, nil, nil, nil)
}

// ===================== Auth =====================

func (c *Client) Login(ctx context.Context, in *LoginInput) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, "", http.MethodPost, "auth/login", nil, in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) SendOTP(ctx context.Context, in *OTPInput) error {
	return c.do(ctx, "", http.MethodPost, "auth/otp/send", nil, in, nil)
}

func (c *Client) VerifyOTP(ctx context.Context, in *VerifyOTPInput) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, "", http.MethodPost, "auth/otp/verify", nil, in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, "", http.MethodPost, "auth/password/request-reset", nil, body, nil)
}

func (c *Client) ResetPassword(ctx context.Context, in *ResetPasswordInput) error {
	return c.do(ctx, "", http.MethodPost, "auth/password/reset", nil, in, nil)
}

func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.do(ctx, "", http.MethodGet, "auth/verify", url.Values{"token": {token}}, nil, nil)
}

// ===================== Company =====================

func (c *Client) CreateCompany(ctx context.Context, token string, in *CompanyInput) (*Company, error) {
	var company Company
	if err := c.do(ctx, token, http.MethodPost, "company", nil, in, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *Client) GetCompany(ctx context.Context, token string, id int64) (*Company, error) {
	var company Company
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("company/%d", id), nil, nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *Client) UpdateCompany(ctx context.Context, token string, id int64, in *CompanyInput) (*Company, error) {
	var company Company
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("company/%d", id), nil, in, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *Client) InviteOrganizer(ctx context.Context, token string, in *InviteInput) error {
	return c.do(ctx, token, http.MethodPost, "company/invite-organizer", nil, in, nil)
}

// ===================== Users =====================

func (c *Client) UpdateMe(ctx context.Context, token string, name string) (*User, error) {
	var body struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, token, http.MethodPatch, "users/me", nil, map[string]string{"name": name}, &body); err != nil {
		return nil, err
	}
	if body.User == nil {
		return nil, &Error{Status: http.StatusBadGateway, Message: "update response carried no user"}
	}
	return body.User, nil
}

func (c *Client) ChangePassword(ctx context.Context, token string, in *ChangePasswordInput) error {
	return c.do(ctx, token, http.MethodPost, "users/me/change-password", nil, in, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("users/%d", id), nil, nil, nil)
}
