package dto

import (
	"time"

	"event-portal/core/backend"
	"event-portal/modules/participation/service"
)

type EventSummary struct {
	ID          int64                 `json:"id"`
	Title       string                `json:"title"`
	Type        backend.EventType     `json:"type"`
	Category    backend.EventCategory `json:"category"`
	Status      backend.EventStatus   `json:"status"`
	StatusColor string                `json:"statusColor"`
	Venue       string                `json:"venue,omitempty"`
	StartDate   time.Time             `json:"startDate"`
	EndDate     time.Time             `json:"endDate"`
	Company     string                `json:"company,omitempty"`
	CoverURL    string                `json:"coverUrl,omitempty"`
}

type DashboardEntry struct {
	ParticipationID int64                       `json:"participationId"`
	Status          backend.ParticipationStatus `json:"status"`
	StatusBadge     service.Badge               `json:"statusBadge"`
	JoinedAt        time.Time                   `json:"joinedAt"`
	JoinLink        string                      `json:"joinLink,omitempty"`
	Event           EventSummary                `json:"event"`
}

type DashboardResponse struct {
	Filter  service.Filter   `json:"filter"`
	Counts  service.Counts   `json:"counts"`
	Entries []DashboardEntry `json:"entries"`
}

type ParticipationResponse struct {
	ID          int64                       `json:"id"`
	EventID     int64                       `json:"eventId"`
	Status      backend.ParticipationStatus `json:"status"`
	StatusBadge service.Badge               `json:"statusBadge"`
	Answers     map[string]any              `json:"answers,omitempty"`
	JoinedAt    time.Time                   `json:"joinedAt"`
}
