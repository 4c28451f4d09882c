package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
	tokenrepo "storefront/internal/repository/token"
)

type stubUserRepo struct {
	created   *domain.User
	createErr error
	lastInput domain.User

	byEmail    *domain.User
	byEmailErr error

	byID    *domain.User
	byIDErr error
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	s.lastInput = u
	if s.created != nil || s.createErr != nil {
		return s.created, s.createErr
	}
	out := u
	out.ID = "user-1"
	return &out, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return s.byEmail, s.byEmailErr
}

func (s *stubUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return s.byID, s.byIDErr
}

type stubCustomerRepo struct {
	customer    *domain.Customer
	err         error
	lastUserID  string
	lastPhone   string
	lastAddress string
}

func (s *stubCustomerRepo) GetOrCreate(_ context.Context, userID, phone, address string) (*domain.Customer, error) {
	s.lastUserID = userID
	s.lastPhone = phone
	s.lastAddress = address
	if s.customer != nil || s.err != nil {
		return s.customer, s.err
	}
	return &domain.Customer{ID: "cust-1", UserID: userID, Phone: phone, Address: address}, nil
}

type memTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: map[string]tokenrepo.Token{}}
}

func (m *memTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, ok := m.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	m.tokens[t.Token] = t
	return nil
}

func (m *memTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := m.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memTokenRepo) Delete(_ context.Context, token string) error {
	delete(m.tokens, token)
	return nil
}

func TestRegisterValidation(t *testing.T) {
	svc := New(&stubUserRepo{}, &stubCustomerRepo{}, newMemTokenRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: " ", Password: "Abcdefg1"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty email, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "short"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}

func TestRegisterHappyPath(t *testing.T) {
	users := &stubUserRepo{}
	customers := &stubCustomerRepo{}
	svc := New(users, customers, newMemTokenRepo())

	c, err := svc.Register(context.Background(), RegisterInput{
		Email:     "User@Example.com",
		Password:  "Abcdefg1",
		FirstName: "Ivan",
		Phone:     " +10000000000 ",
		Address:   "Some street 1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if users.lastInput.Email != "user@example.com" {
		t.Fatalf("email not lowercased: %q", users.lastInput.Email)
	}
	if users.lastInput.PasswordHash == "Abcdefg1" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users.lastInput.PasswordHash), []byte("Abcdefg1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if customers.lastUserID != "user-1" || customers.lastPhone != "+10000000000" {
		t.Fatalf("customer profile not created from user: %+v", customers)
	}
	if c.UserID != "user-1" {
		t.Fatalf("unexpected customer: %+v", c)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Abcdefg1"), bcrypt.DefaultCost)
	users := &stubUserRepo{byEmail: &domain.User{ID: "user-1", Email: "a@b.c", PasswordHash: string(hash)}}
	svc := New(users, &stubCustomerRepo{}, newMemTokenRepo())
	ctx := context.Background()

	if _, _, _, err := svc.Login(ctx, "a@b.c", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	users.byEmail = nil
	users.byEmailErr = domain.ErrNotFound
	if _, _, _, err := svc.Login(ctx, "missing@b.c", "Abcdefg1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Abcdefg1"), bcrypt.DefaultCost)
	user := &domain.User{ID: "user-1", Email: "a@b.c", PasswordHash: string(hash)}
	tokens := newMemTokenRepo()
	svc := New(&stubUserRepo{byEmail: user, byID: user}, &stubCustomerRepo{}, tokens)

	u, access, refresh, err := svc.Login(context.Background(), "a@b.c", "Abcdefg1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.ID != "user-1" || access == "" || refresh == "" || access == refresh {
		t.Fatalf("unexpected login result: %v %q %q", u, access, refresh)
	}
	if len(tokens.tokens) != 2 {
		t.Fatalf("expected 2 persisted tokens, got %d", len(tokens.tokens))
	}

	got, err := svc.LookupByToken(context.Background(), access)
	if err != nil {
		t.Fatalf("LookupByToken: %v", err)
	}
	if got.ID != "user-1" {
		t.Fatalf("unexpected user: %+v", got)
	}

	// refresh tokens cannot be used as access tokens
	if _, err := svc.LookupByToken(context.Background(), refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for refresh token, got %v", err)
	}
}

func TestLookupByTokenExpired(t *testing.T) {
	user := &domain.User{ID: "user-1"}
	tokens := newMemTokenRepo()
	tokens.tokens["stale"] = tokenrepo.Token{
		Token:     "stale",
		UserID:    "user-1",
		Kind:      "access",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	svc := New(&stubUserRepo{byID: user}, &stubCustomerRepo{}, tokens)

	if _, err := svc.LookupByToken(context.Background(), "stale"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
	if _, ok := tokens.tokens["stale"]; ok {
		t.Fatalf("expired token must be deleted")
	}
}

func TestGetOrCreateEmptyContact(t *testing.T) {
	customers := &stubCustomerRepo{}
	svc := New(&stubUserRepo{}, customers, newMemTokenRepo())

	if _, err := svc.GetOrCreate(context.Background(), "user-1"); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if customers.lastUserID != "user-1" || customers.lastPhone != "" || customers.lastAddress != "" {
		t.Fatalf("expected empty contact fields, got %+v", customers)
	}
}
