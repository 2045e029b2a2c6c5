package store

import (
	"errors"
	"time"

	"gazeta-portal/core/rbac"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("record already exists")
	ErrRoleExists = errors.New("role already exists")

	// ErrQueueEntryNotPending names the silent no-op of the queue state machine:
	// the entry is absent or already decided, and the decision is dropped.
	ErrQueueEntryNotPending = errors.New("queue entry absent or already decided")

	ErrTicketDenied = errors.New("ticket interaction denied")
)

// Queue request and ticket statuses are stored verbatim; the portuguese values
// predate this rewrite and live in existing documents.
const (
	StatusPending  = "pendente"
	StatusApproved = "aprovado"
	StatusRejected = "rejeitado"

	TicketOpen   = "aberto"
	TicketClosed = "fechado"

	ScopePersonal   = "pessoal"
	ScopeDepartment = "departamento"
)

type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Contact       string `json:"contact"`
	Notes         string `json:"notes"`
	PortalEnabled bool   `json:"portal_enabled"`
	CreatedAt     string `json:"created_at"`
}

type Journal struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Edition        string  `json:"edition"`
	ReleaseDate    string  `json:"release_date"`
	Description    string  `json:"description"`
	File           string  `json:"file,omitempty"`
	Status         string  `json:"status"`
	ApprovalReason *string `json:"approval_reason"`
	ApprovalToken  string  `json:"approval_token"`
	CreatedAt      string  `json:"created_at"`
}

type Asset struct {
	ID           string `json:"id"`
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name"`
	Notes        string `json:"notes"`
	Owner        string `json:"owner"`
	DepartmentID string `json:"department_id,omitempty"`
	Scope        string `json:"scope"`
	UploadedAt   string `json:"uploaded_at"`
}

type Rules struct {
	Content   string  `json:"content"`
	UpdatedAt *string `json:"updated_at"`
}

type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Audience  string `json:"audience"`
	Pinned    bool   `json:"pinned"`
	CreatedAt string `json:"created_at"`
}

type Event struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Category     string `json:"category"`
	DepartmentID string `json:"department_id,omitempty"`
	Description  string `json:"description"`
}

type Department struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Director    string         `json:"director"`
	JoinToken   string         `json:"join_token"`
	Members     []Member       `json:"members"`
	Queue       []QueueRequest `json:"queue"`
}

type QueueRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	DesiredRole string `json:"desired_role"`
	Motivation  string `json:"motivation"`
	Status      string `json:"status"`
	DecidedBy   string `json:"decided_by,omitempty"`
	DecidedAt   string `json:"decided_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type Member struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type Ticket struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Reason      string          `json:"reason"`
	Urgency     string          `json:"urgency"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by"`
	CreatedRole string          `json:"created_role"`
	Messages    []TicketMessage `json:"messages"`
	CreatedAt   string          `json:"created_at"`
}

type TicketMessage struct {
	Author    string `json:"author"`
	Role      string `json:"role"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	PasswordHash  string `json:"password_hash"`
	PasswordSalt  string `json:"password_salt"`
	PortalEnabled bool   `json:"portal_enabled"`
	CreatedAt     string `json:"created_at"`
}

type Widget struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Enabled  bool   `json:"enabled"`
	Type     string `json:"type"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content,omitempty"`
}

type SiteSettings struct {
	LogoURL        string   `json:"logo_url"`
	PrimaryColor   string   `json:"primary_color"`
	AccentColor    string   `json:"accent_color"`
	Tagline        string   `json:"tagline"`
	OnboardingDone bool     `json:"onboarding_done"`
	Widgets        []Widget `json:"widgets"`
}

// SessionRecord is the server-held principal snapshot for one session id. The
// permission set is resolved once at login and never re-derived afterwards.
type SessionRecord struct {
	ID          string
	Username    string
	Role        string
	Permissions []rbac.Permission
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

func (sr *SessionRecord) Has(p rbac.Permission) bool {
	if sr == nil {
		return false
	}
	for _, sp := range sr.Permissions {
		if sp == p {
			return true
		}
	}
	return false
}

// Timestamp is the stored wall-clock format shared by every collection.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999")
}
