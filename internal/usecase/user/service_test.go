package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier-track/internal/config"
	domainUser "courier-track/internal/domain/user"
	appErrors "courier-track/pkg/errors"
	"courier-track/pkg/utils"
)

// mockUserRepository is a mock implementation of user.Repository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *domainUser.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domainUser.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *mockUserRepository) GetAll(ctx context.Context) ([]*domainUser.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainUser.User), args.Error(1)
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role string) ([]*domainUser.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainUser.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *domainUser.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// mockRefreshTokenRepository is a mock implementation of user.RefreshTokenRepository.
type mockRefreshTokenRepository struct {
	mock.Mock
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *domainUser.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domainUser.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) DeleteExpired(ctx context.Context, olderThan time.Duration) error {
	args := m.Called(ctx, olderThan)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:             "test-secret-for-unit-tests",
			ExpiryHours:        1,
			RefreshExpiryHours: 24,
		},
	}
}

func validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
		FullName: "Alice Walker",
	}
}

func TestRegister(t *testing.T) {
	userRepo := new(mockUserRepository)
	tokenRepo := new(mockRefreshTokenRepository)
	service := NewService(userRepo, tokenRepo, testConfig())

	userRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, domainUser.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*domainUser.User)
			u.ID = uuid.New()
		}).Return(nil)
	tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.RefreshToken")).Return(nil)

	resp, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, domainUser.RoleCustomer, resp.User.Role)
	assert.True(t, resp.User.IsActive)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// Password is stored hashed, never verbatim
	stored := userRepo.Calls[1].Arguments.Get(1).(*domainUser.User)
	assert.NotEqual(t, "Sup3rSecret", stored.PasswordHashed)
	assert.True(t, utils.CheckPassword(stored.PasswordHashed, "Sup3rSecret"))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := NewService(userRepo, new(mockRefreshTokenRepository), testConfig())

	existing := &domainUser.User{ID: uuid.New(), Username: "alice"}
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(existing, nil)

	_, err := service.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, appErrors.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_UsernameIsCaseSensitive(t *testing.T) {
	userRepo := new(mockUserRepository)
	tokenRepo := new(mockRefreshTokenRepository)
	service := NewService(userRepo, tokenRepo, testConfig())

	// "Alice" exists but "alice" does not; they are distinct accounts.
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, domainUser.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domainUser.User).ID = uuid.New()
		}).Return(nil)
	tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.RefreshToken")).Return(nil)

	resp, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestRegister_WeakPassword(t *testing.T) {
	service := NewService(new(mockUserRepository), new(mockRefreshTokenRepository), testConfig())

	req := validRegisterRequest()
	req.Password = "alllowercase"

	_, err := service.Register(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WEAK_PASSWORD", appErr.Code)
}

func registeredUser(t *testing.T, password string) *domainUser.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &domainUser.User{
		ID:             uuid.New(),
		Username:       "alice",
		PasswordHashed: hashed,
		Role:           domainUser.RoleCustomer,
		IsActive:       true,
	}
}

func TestLogin(t *testing.T) {
	userRepo := new(mockUserRepository)
	tokenRepo := new(mockRefreshTokenRepository)
	service := NewService(userRepo, tokenRepo, testConfig())

	user := registeredUser(t, "Sup3rSecret")
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(user, nil)
	tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.RefreshToken")).Return(nil)

	resp, err := service.Login(context.Background(), &LoginRequest{Username: "alice", Password: "Sup3rSecret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)

	// Access token round-trips to the same identity
	claims, err := utils.ValidateToken(resp.AccessToken, "test-secret-for-unit-tests")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domainUser.RoleCustomer, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := NewService(userRepo, new(mockRefreshTokenRepository), testConfig())

	userRepo.On("GetByUsername", mock.Anything, "alice").Return(registeredUser(t, "Sup3rSecret"), nil)

	_, err := service.Login(context.Background(), &LoginRequest{Username: "alice", Password: "WrongPass1"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := NewService(userRepo, new(mockRefreshTokenRepository), testConfig())

	userRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, domainUser.ErrUserNotFound)

	_, err := service.Login(context.Background(), &LoginRequest{Username: "nobody", Password: "Sup3rSecret"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := NewService(userRepo, new(mockRefreshTokenRepository), testConfig())

	user := registeredUser(t, "Sup3rSecret")
	user.IsActive = false
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(user, nil)

	_, err := service.Login(context.Background(), &LoginRequest{Username: "alice", Password: "Sup3rSecret"})
	assert.ErrorIs(t, err, appErrors.ErrUserInactive)
}

func TestRefreshToken_RotatesToken(t *testing.T) {
	userRepo := new(mockUserRepository)
	tokenRepo := new(mockRefreshTokenRepository)
	cfg := testConfig()
	service := NewService(userRepo, tokenRepo, cfg)

	user := registeredUser(t, "Sup3rSecret")
	pair, err := utils.GenerateTokenPair(user.ID, user.Username, user.Role, cfg.JWT.Secret, 1, 24)
	require.NoError(t, err)

	stored := &domainUser.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     pair.RefreshToken,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	tokenRepo.On("GetByToken", mock.Anything, pair.RefreshToken).Return(stored, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	tokenRepo.On("Revoke", mock.Anything, stored.ID).Return(nil)
	tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.RefreshToken")).Return(nil)

	resp, err := service.RefreshToken(context.Background(), &RefreshTokenRequest{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	tokenRepo.AssertCalled(t, "Revoke", mock.Anything, stored.ID)
}

func TestRefreshToken_RevokedToken(t *testing.T) {
	tokenRepo := new(mockRefreshTokenRepository)
	service := NewService(new(mockUserRepository), tokenRepo, testConfig())

	stored := &domainUser.RefreshToken{
		ID:        uuid.New(),
		Token:     "revoked-token",
		Revoked:   true,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	tokenRepo.On("GetByToken", mock.Anything, "revoked-token").Return(stored, nil)

	_, err := service.RefreshToken(context.Background(), &RefreshTokenRequest{RefreshToken: "revoked-token"})
	assert.ErrorIs(t, err, appErrors.ErrTokenExpired)
}

func TestUpdateProfile_KeepsUsernameAndRole(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := NewService(userRepo, new(mockRefreshTokenRepository), testConfig())

	user := registeredUser(t, "Sup3rSecret")
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)

	newName := "Alice W."
	resp, err := service.UpdateProfile(context.Background(), user.ID, &UpdateProfileRequest{FullName: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Alice W.", resp.FullName)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, domainUser.RoleCustomer, resp.Role)
}

func TestListCouriers(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := NewService(userRepo, new(mockRefreshTokenRepository), testConfig())

	couriers := []*domainUser.User{
		{ID: uuid.New(), Username: "carol", Role: domainUser.RoleCourier},
	}
	userRepo.On("ListByRole", mock.Anything, domainUser.RoleCourier).Return(couriers, nil)

	out, err := service.ListCouriers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "carol", out[0].Username)
}
