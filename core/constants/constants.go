package constants

import "time"

// Context keys
const (
	ContextSession   = "session"
	ContextRequestID = "request_id"
)

// Timeouts
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultTimeout        = 30 * time.Second
	UploadTimeout         = 60 * time.Second
)

// Database
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 5 // minutes
)

// Redis keys
const (
	RedisKeySession = "session:"
)

// Session snapshot kinds
const (
	SnapshotCompany = "company"
	SnapshotEvents  = "events"
)

// Pages
const (
	RouteHome                 = "/"
	RouteEvents               = "/events"
	RouteAuth                 = "/auth"
	RouteLogin                = "/auth/login"
	RouteUnauthorized         = "/unauthorized"
	RouteParticipant          = "/participant"
	RouteParticipantDashboard = "/participant/dashboard"
	RouteAdmin                = "/admin"
	RouteAdminDashboard       = "/admin/dashboard"
	RouteOnboarding           = "/onboarding"
)

// Pagination
const (
	DefaultPageNumber     = 1
	DefaultPageSize       = 12
	MaxPageSize           = 100
	AdminEventsPageSize   = 12
	DashboardFetchWorkers = 4
)

// Background tasks
const (
	TaskMarkExpired    = "events:mark_expired"
	TaskCompanyRefresh = "company:refresh"
	TaskSessionSweep   = "session:sweep"

	QueueDefault     = "default"
	QueueMaintenance = "maintenance"

	MarkExpiredUniqueTTL   = time.Minute
	CompanyRefreshDeadline = time.Minute

	SessionSweepSpec  = "@hourly"
	SessionSweepAge   = 24 * time.Hour // snapshots untouched this long are checked against redis
	SessionSweepBatch = 500
)

// Uploads
const (
	MaxUploadSize     = 50 << 20
	StorageEventsPath = "events"
)
