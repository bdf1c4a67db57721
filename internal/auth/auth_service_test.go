package auth

import (
	"context"
	"errors"
	"testing"

	autherrors "go-hrms/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepo struct {
	createFn     func(ctx context.Context, user *User) error
	getByEmailFn func(ctx context.Context, email string) (*User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*User, error)
}

func (f *fakeAuthRepo) Create(ctx context.Context, user *User) error {
	return f.createFn(ctx, user)
}

func (f *fakeAuthRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeAuthRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	employeeID := uuid.New()
	repo := &fakeAuthRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{
				ID:         uuid.New(),
				EmployeeID: &employeeID,
				Email:      email,
				Name:       "Jane",
				Password:   hashPassword(t, "secret123"),
				Role:       "hr",
			}, nil
		},
	}

	svc := NewService(repo)
	access, refresh, resp, err := svc.Login(context.Background(), "jane@corp.test", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "HR", resp.Role)
	assert.Equal(t, employeeID.String(), resp.EmployeeID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeAuthRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{
				ID:       uuid.New(),
				Email:    email,
				Password: hashPassword(t, "secret123"),
				Role:     "EMPLOYEE",
			}, nil
		},
	}

	svc := NewService(repo)
	_, _, _, err := svc.Login(context.Background(), "jane@corp.test", "wrong")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &fakeAuthRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo)
	_, _, _, err := svc.Login(context.Background(), "nobody@corp.test", "whatever")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeAuthRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{ID: uuid.New(), Email: email}, nil
		},
	}

	svc := NewService(repo)
	_, err := svc.Register(context.Background(), RegisterRequest{
		EmployeeID: uuid.NewString(),
		Email:      "taken@corp.test",
		Name:       "Dup",
		Password:   "secret123",
	})

	assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyUsed)
}

func TestRegister_DefaultsRoleToEmployee(t *testing.T) {
	var created *User
	repo := &fakeAuthRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createFn: func(ctx context.Context, user *User) error {
			created = user
			return nil
		},
	}

	svc := NewService(repo)
	resp, err := svc.Register(context.Background(), RegisterRequest{
		EmployeeID: uuid.NewString(),
		Email:      "new@corp.test",
		Name:       "New Hire",
		Password:   "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "EMPLOYEE", resp.Role)
	assert.NotNil(t, created)
	assert.NotEqual(t, "secret123", created.Password)
}

func TestGetMe_InvalidID(t *testing.T) {
	svc := NewService(&fakeAuthRepo{})
	_, err := svc.GetMe(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
}

func TestRefreshToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeAuthRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*User, error) {
			return nil, errors.New("should not be called")
		},
	}

	svc := NewService(repo)
	_, _, _, err := svc.RefreshToken(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}
