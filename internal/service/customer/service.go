package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
	tokenrepo "storefront/internal/repository/token"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles registration/login and resolution of customer profiles
// for identity accounts.
type Service struct {
	users       userRepo
	customers   customerRepo
	tokens      *tokenManager
	accessTTL   time.Duration
	refreshTTL  time.Duration
	passwordMin int
}

type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type customerRepo interface {
	GetOrCreate(ctx context.Context, userID, phone, address string) (*domain.Customer, error)
}

// New creates a Service with sane defaults.
func New(users userRepo, customers customerRepo, tokens tokenrepo.Repository) *Service {
	return &Service{
		users:       users,
		customers:   customers,
		tokens:      newTokenManager(tokens),
		accessTTL:   48 * time.Hour,
		refreshTTL:  30 * 24 * time.Hour,
		passwordMin: 8,
	}
}

// RegisterInput captures fields expected by the registration endpoint.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Register creates an identity account and its customer profile.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email required", domain.ErrInvalidInput)
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("%w: password too short", domain.ErrInvalidInput)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		return nil, err
	}
	return s.customers.GetOrCreate(ctx, u.ID, strings.TrimSpace(in.Phone), strings.TrimSpace(in.Address))
}

// Login validates credentials and returns issued tokens plus the user.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	password = strings.TrimSpace(password)
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.Issue(ctx, u.ID, "access", s.accessTTL)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.Issue(ctx, u.ID, "refresh", s.refreshTTL)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

// LookupByToken resolves an access token to its identity account.
func (s *Service) LookupByToken(ctx context.Context, token string) (*domain.User, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok || meta.Kind != "access" {
		return nil, ErrInvalidToken
	}
	return s.users.GetByID(ctx, meta.UserID)
}

// GetOrCreate returns the customer profile for an identity account, creating
// one with empty contact fields when absent. Callers invoke this explicitly;
// profiles are never created as a hidden side effect of a read path.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*domain.Customer, error) {
	return s.customers.GetOrCreate(ctx, userID, "", "")
}

// AccessTTLSeconds reports the access token lifetime for token responses.
func (s *Service) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}
