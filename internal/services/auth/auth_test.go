package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	customjwt "github.com/magabrotheeeer/trading-store/internal/lib/jwt"
	"github.com/magabrotheeeer/trading-store/internal/lib/password"
	"github.com/magabrotheeeer/trading-store/internal/models"
	"github.com/magabrotheeeer/trading-store/internal/services/auth"
	"github.com/magabrotheeeer/trading-store/internal/storage/mongodb"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.Claims), args.Error(1)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *UserRepoMock)
		wantErr    error
		wantID     string
	}{
		{
			name: "successful registration",
			setupMocks: func(r *UserRepoMock) {
				r.On("FindUserByEmail", mock.Anything, "test@example.com").
					Return(nil, mongodb.ErrNotFound).Once()
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Email == "test@example.com" &&
						user.Name == "Test User" &&
						user.HashedPassword != "" &&
						user.HashedPassword != "password123" &&
						user.Role == models.RoleUser &&
						user.IsActive
				})).Return("64f000000000000000000001", nil).Once()
			},
			wantID: "64f000000000000000000001",
		},
		{
			name: "email already taken",
			setupMocks: func(r *UserRepoMock) {
				r.On("FindUserByEmail", mock.Anything, "test@example.com").
					Return(&models.User{Email: "test@example.com"}, nil).Once()
			},
			wantErr: auth.ErrEmailTaken,
		},
		{
			name: "repository lookup error",
			setupMocks: func(r *UserRepoMock) {
				r.On("FindUserByEmail", mock.Anything, "test@example.com").
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := auth.NewService(repo, jwtMock)

			tt.setupMocks(repo)

			got, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got.ID)
				assert.Equal(t, "test@example.com", got.Email)
				assert.Equal(t, models.RoleUser, got.Role)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestService_Login(t *testing.T) {
	rawPassword := "correctpassword"
	hashed, err := password.GetHash(rawPassword)
	require.NoError(t, err)

	storedUser := &models.User{
		Email:          "test@example.com",
		HashedPassword: hashed,
		Role:           models.RoleUser,
	}

	tests := []struct {
		name       string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    error
	}{
		{
			name:     "successful login",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("FindUserByEmail", mock.Anything, "test@example.com").
					Return(storedUser, nil).Once()
				j.On("GenerateToken", "test@example.com").Return("signed-token", nil).Once()
			},
			wantToken: "signed-token",
		},
		{
			name:     "wrong password",
			password: "wrongpassword",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("FindUserByEmail", mock.Anything, "test@example.com").
					Return(storedUser, nil).Once()
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("FindUserByEmail", mock.Anything, "test@example.com").
					Return(nil, mongodb.ErrNotFound).Once()
			},
			wantErr: auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := auth.NewService(repo, jwtMock)

			tt.setupMocks(repo, jwtMock)

			token, err := svc.Login(context.Background(), "test@example.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

// Round-trip: реальный jwt.Maker, мок только для репозитория.
func TestService_ResolveToken(t *testing.T) {
	maker := customjwt.NewJWTMaker("test-secret", time.Hour)
	storedUser := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "test@example.com",
		Role:  models.RoleUser,
	}

	t.Run("valid token resolves user", func(t *testing.T) {
		repo := new(UserRepoMock)
		repo.On("FindUserByEmail", mock.Anything, "test@example.com").
			Return(storedUser, nil).Once()
		svc := auth.NewService(repo, maker)

		token, err := maker.GenerateToken("test@example.com")
		require.NoError(t, err)

		user, err := svc.ResolveToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, storedUser.Email, user.Email)
		repo.AssertExpectations(t)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredMaker := customjwt.NewJWTMaker("test-secret", -time.Minute)
		repo := new(UserRepoMock)
		svc := auth.NewService(repo, maker)

		token, err := expiredMaker.GenerateToken("test@example.com")
		require.NoError(t, err)

		user, err := svc.ResolveToken(context.Background(), token)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("token for deleted user", func(t *testing.T) {
		repo := new(UserRepoMock)
		repo.On("FindUserByEmail", mock.Anything, "test@example.com").
			Return(nil, mongodb.ErrNotFound).Once()
		svc := auth.NewService(repo, maker)

		token, err := maker.GenerateToken("test@example.com")
		require.NoError(t, err)

		user, err := svc.ResolveToken(context.Background(), token)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, user)
		repo.AssertExpectations(t)
	})

	t.Run("empty subject", func(t *testing.T) {
		repo := new(UserRepoMock)
		svc := auth.NewService(repo, maker)

		token, err := maker.GenerateToken("")
		require.NoError(t, err)

		user, err := svc.ResolveToken(context.Background(), token)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, user)
	})
}
