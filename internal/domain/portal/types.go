package portal

import (
	"errors"
	"time"
)

type Role string

const (
	RoleCitizen Role = "citizen"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether value is a member of the closed role set.
func ValidRole(value string) bool {
	switch Role(value) {
	case RoleCitizen, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Elevated roles bypass ownership checks on resource-scoped routes.
func (r Role) Elevated() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Principal is a resolved, active account attached to a request context.
type Principal struct {
	ID       string
	Name     string
	Email    string
	Role     Role
	Active   bool
	Verified bool
}

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationApproved    ApplicationStatus = "approved"
	ApplicationRejected    ApplicationStatus = "rejected"
)

type GrievanceStatus string

const (
	GrievanceOpen       GrievanceStatus = "open"
	GrievanceInProgress GrievanceStatus = "in_progress"
	GrievanceResolved   GrievanceStatus = "resolved"
	GrievanceClosed     GrievanceStatus = "closed"
)

type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Address      string
	WardNumber   string
	PasswordHash string
	Role         Role
	Active       bool
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Scheme struct {
	ID          string
	Title       string
	Description string
	Category    string
	Eligibility string
	Benefits    string
	Documents   string
	Active      bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Announcement struct {
	ID        string
	Title     string
	Body      string
	Category  string
	Views     int64
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Application struct {
	ID          string
	SchemeID    string
	ApplicantID string
	Remarks     string
	Details     string
	Status      ApplicationStatus
	ReviewedBy  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerID implements OwnedResource.
func (a Application) OwnerID() string { return a.ApplicantID }

type Grievance struct {
	ID          string
	SubmitterID string
	Subject     string
	Description string
	Category    string
	Status      GrievanceStatus
	Response    string
	AssigneeID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerID implements OwnedResource.
func (g Grievance) OwnerID() string { return g.SubmitterID }

// OwnedResource is anything the ownership guard can adjudicate. The owner is
// fixed at creation and never reassigned.
type OwnedResource interface {
	OwnerID() string
}

// ResourceKind names an ownership-checked resource class in the guard's
// capability map.
type ResourceKind string

const (
	KindApplication ResourceKind = "application"
	KindGrievance   ResourceKind = "grievance"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInternal        = errors.New("internal error")
)

// ErrorKind is the internal classification attached to gate rejections. The
// transport status can mask two kinds to the same code (ownership failures
// answer 404); logs keep them apart.
type ErrorKind string

const (
	KindUnauthenticated     ErrorKind = "unauthenticated"
	KindForbiddenRole       ErrorKind = "forbidden-role"
	KindForbiddenOwnership  ErrorKind = "forbidden-ownership"
	KindForbiddenUnverified ErrorKind = "forbidden-unverified"
	KindNotFoundErr         ErrorKind = "not-found"
	KindBadRequest          ErrorKind = "bad-request"
	KindValidationFailed    ErrorKind = "validation-failed"
	KindRateLimited         ErrorKind = "rate-limited"
	KindInternalErr         ErrorKind = "internal"
)

// Error carries an internal kind and a user-facing message around one of the
// sentinel errors above.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func AsPortalError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
