package user

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/apperror"
)

var (
	ErrNotFound                = apperror.New(http.StatusNotFound, "user not found")
	ErrUserExists              = apperror.New(http.StatusConflict, "user already exists")
	ErrInvalidCredentials      = apperror.New(http.StatusUnauthorized, "invalid credentials")
	ErrEmailRequired           = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort        = apperror.New(http.StatusBadRequest, "password must be at least 6 characters long")
	ErrInvalidRole             = apperror.New(http.StatusBadRequest, "role must be guest or host")
	ErrInvalidTravelFrequency  = apperror.New(http.StatusBadRequest, "travel frequency must be weekly, monthly, quarterly or annually")
	ErrTravelFrequencyRequired = apperror.New(http.StatusBadRequest, "please select your travel frequency")
)

const MinPasswordLength = 6

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
)

func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleHost
}

// TravelFrequencies are the answers offered on guest sign-up.
var TravelFrequencies = []string{"weekly", "monthly", "quarterly", "annually"}

// User represents a guest or host account.
type User struct {
	ID              string
	Email           string
	PasswordHash    string
	Role            Role
	TravelFrequency *string // guests only
	CreatedAt       time.Time
}

func (u *User) IsHost() bool {
	return u.Role == RoleHost
}
