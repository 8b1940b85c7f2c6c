package controller

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/modules/event/dto"

	"github.com/labstack/echo/v4"
)

// bindEventRequest reads an event form sent either as JSON or as multipart with files/fileTypes.
func bindEventRequest(c echo.Context) (*dto.EventRequest, []dto.UploadFile, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		req := new(dto.EventRequest)
		if err := c.Bind(req); err != nil {
			return nil, nil, err
		}
		return req, nil, nil
	}

	if err := c.Request().ParseMultipartForm(constants.MaxUploadSize); err != nil {
		return nil, nil, err
	}
	form := c.Request().MultipartForm
	req, err := eventRequestFromForm(form.Value)
	if err != nil {
		return nil, nil, err
	}
	files, err := uploadFiles(form)
	if err != nil {
		return nil, nil, err
	}
	return req, files, nil
}

func eventRequestFromForm(values map[string][]string) (*dto.EventRequest, error) {
	req := &dto.EventRequest{
		Title:       formString(values, "title"),
		Description: formString(values, "description"),
		Venue:       formString(values, "venue"),
		JoinLink:    formString(values, "joinLink"),
		ContactInfo: formString(values, "contactInfo"),
	}
	if v := formString(values, "type"); v != nil {
		t := backend.EventType(*v)
		req.Type = &t
	}
	if v := formString(values, "status"); v != nil {
		s := backend.EventStatus(*v)
		req.Status = &s
	}
	if v := formString(values, "TypeOfEvent"); v != nil {
		cat := backend.EventCategory(*v)
		req.Category = &cat
	}

	if v := formString(values, "totalSeats"); v != nil && *v != "" {
		n, err := strconv.Atoi(*v)
		if err != nil {
			return nil, fmt.Errorf("totalSeats: %w", err)
		}
		req.TotalSeats = &n
	}
	if v := formString(values, "requiresApproval"); v != nil && *v != "" {
		b, err := strconv.ParseBool(*v)
		if err != nil {
			return nil, fmt.Errorf("requiresApproval: %w", err)
		}
		req.RequiresApproval = &b
	}

	var err error
	if req.StartDate, err = formTime(values, "startDate"); err != nil {
		return nil, err
	}
	if req.EndDate, err = formTime(values, "endDate"); err != nil {
		return nil, err
	}

	if v := formString(values, "joinQuestions"); v != nil {
		req.JoinQuestions = parseQuestions(*v)
	}
	if raw := first(values, "existingAttachments"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.ExistingAttachments); err != nil {
			return nil, fmt.Errorf("existingAttachments: %w", err)
		}
	}
	return req, nil
}

// parseQuestions accepts a JSON array or one question per line.
func parseQuestions(raw string) []string {
	var qs []string
	if err := json.Unmarshal([]byte(raw), &qs); err == nil {
		return qs
	}
	return strings.Split(raw, "\n")
}

func uploadFiles(form *multipart.Form) ([]dto.UploadFile, error) {
	headers := form.File["files"]
	types := form.Value["fileTypes"]
	if len(types) != len(headers) {
		return nil, fmt.Errorf("got %d files and %d file types", len(headers), len(types))
	}
	files := make([]dto.UploadFile, 0, len(headers))
	for i, h := range headers {
		t := backend.AttachmentType(unquote(types[i]))
		if t != backend.AttachmentImage && t != backend.AttachmentVideo {
			return nil, fmt.Errorf("file %s: unknown attachment type %q", h.Filename, t)
		}
		files = append(files, dto.UploadFile{Header: h, Type: t})
	}
	return files, nil
}

func first(values map[string][]string, key string) string {
	if vs := values[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// formString returns nil for absent fields. Values stringified twice by the browser are unquoted.
func formString(values map[string][]string, key string) *string {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := unquote(vs[0])
	return &v
}

func formTime(values map[string][]string, key string) (*time.Time, error) {
	v := formString(values, key)
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &t, nil
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}
