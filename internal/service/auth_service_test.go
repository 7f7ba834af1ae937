package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"warga/internal/auth"
	apperrors "warga/internal/errors"
	"warga/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) CountByEmailOrNIK(ctx context.Context, email, nik string) (int64, error) {
	args := m.Called(ctx, email, nik)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

// MockSessionRepository is a mock implementation of SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func validRegistration() *model.User {
	return &model.User{
		Nama:           "Budi Santoso",
		Email:          "budi@example.com",
		NIK:            "3201012345678901",
		Alamat:         "Jl. Pesisir No. 12",
		Telepon:        "081234567890",
		JenisKelamin:   "L",
		KepalaKeluarga: true,
		TempatLahir:    "Cirebon",
		TanggalLahir:   time.Date(1987, 4, 12, 0, 0, 0, 0, time.UTC),
		JenisUsaha:     "Budidaya Ikan",
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(m *MockUserRepository) {
				m.On("CountByEmailOrNIK", mock.Anything, "budi@example.com", "3201012345678901").Return(int64(0), nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "duplicate email or NIK",
			setupMock: func(m *MockUserRepository) {
				m.On("CountByEmailOrNIK", mock.Anything, "budi@example.com", "3201012345678901").Return(int64(1), nil)
			},
			expectedError: ErrEmailOrNIKTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockSessions := new(MockSessionRepository)
			tt.setupMock(mockUsers)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockUsers, mockSessions, jwtService)

			user, err := service.Register(context.Background(), validRegistration(), "rahasia123")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "rahasia123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("rahasia123")))
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockSessionRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "budi@example.com",
			password: "rahasia123",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mUsers.On("FindByEmail", mock.Anything, "budi@example.com").Return(&model.User{
					ID:           1,
					Nama:         "Budi Santoso",
					Email:        "budi@example.com",
					PasswordHash: string(hashedPassword),
					Role:         "user",
				}, nil)
				mSessions.On("Create", mock.Anything, mock.AnythingOfType("*model.Session")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "invalid credentials - user not found",
			email:    "notfound@example.com",
			password: "rahasia123",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mUsers.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "invalid credentials - wrong password",
			email:    "budi@example.com",
			password: "salah",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mUsers.On("FindByEmail", mock.Anything, "budi@example.com").Return(&model.User{
					ID:           1,
					Email:        "budi@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockSessions := new(MockSessionRepository)
			tt.setupMock(mockUsers, mockSessions)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockUsers, mockSessions, jwtService)

			token, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}

			mockUsers.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginStoresSessionWithTwoHourExpiry(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), 10)
	user := &model.User{ID: 1, Nama: "Budi", Email: "budi@example.com", PasswordHash: string(hashedPassword), Role: "user"}

	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	mockUsers.On("FindByEmail", mock.Anything, "budi@example.com").Return(user, nil)

	var stored *model.Session
	mockSessions.On("Create", mock.Anything, mock.AnythingOfType("*model.Session")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Session)
		}).Return(nil)

	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(mockUsers, mockSessions, jwtService)

	token, err := service.Login(context.Background(), "budi@example.com", "rahasia123")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, token, stored.Token)
	assert.Equal(t, "budi@example.com", stored.Email)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), stored.Expiry, 5*time.Second)

	// The token just issued must verify immediately.
	mockSessions.On("FindByToken", mock.Anything, token).Return(stored, nil)
	verified, err := service.Verify(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)

	mockSessions.AssertExpectations(t)
}

// expiredToken signs a token whose embedded expiry claim is already in the past.
func expiredToken(t *testing.T, secret string) string {
	t.Helper()
	claims := &auth.Claims{
		UserID: 1,
		Email:  "budi@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestAuthService_Verify(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	liveToken, _ := jwtService.GenerateToken(1, "budi@example.com", "Budi", "user")
	staleToken := expiredToken(t, "test-secret")

	tests := []struct {
		name          string
		token         string
		setupMock     func(*MockUserRepository, *MockSessionRepository)
		expectedError error
	}{
		{
			name:          "missing token",
			token:         "",
			setupMock:     func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:  "no session row",
			token: liveToken,
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mSessions.On("FindByToken", mock.Anything, liveToken).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:  "expired claim deletes session lazily",
			token: staleToken,
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mSessions.On("FindByToken", mock.Anything, staleToken).Return(&model.Session{
					Token:  staleToken,
					Email:  "budi@example.com",
					Expiry: time.Now().Add(-time.Hour),
				}, nil)
				mSessions.On("DeleteByToken", mock.Anything, staleToken).Return(nil)
			},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:  "garbage token with session row",
			token: "not-a-jwt",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mSessions.On("FindByToken", mock.Anything, "not-a-jwt").Return(&model.Session{
					Token: "not-a-jwt",
					Email: "budi@example.com",
				}, nil)
			},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:  "valid session",
			token: liveToken,
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mSessions.On("FindByToken", mock.Anything, liveToken).Return(&model.Session{
					Token:  liveToken,
					Email:  "budi@example.com",
					Expiry: time.Now().Add(2 * time.Hour),
				}, nil)
				mUsers.On("FindByEmail", mock.Anything, "budi@example.com").Return(&model.User{
					ID:    1,
					Email: "budi@example.com",
				}, nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockSessions := new(MockSessionRepository)
			tt.setupMock(mockUsers, mockSessions)

			service := NewAuthService(mockUsers, mockSessions, jwtService)
			user, err := service.Verify(context.Background(), tt.token)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, "budi@example.com", user.Email)
			}

			mockUsers.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_VerifyAfterLogout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	token, _ := jwtService.GenerateToken(1, "budi@example.com", "Budi", "user")

	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	mockSessions.On("DeleteByToken", mock.Anything, token).Return(nil)
	mockSessions.On("FindByToken", mock.Anything, token).Return(nil, gorm.ErrRecordNotFound)

	service := NewAuthService(mockUsers, mockSessions, jwtService)

	assert.NoError(t, service.Logout(context.Background(), token))

	user, err := service.Verify(context.Background(), token)
	assert.Nil(t, user)
	assert.Equal(t, apperrors.ErrUnauthorized, err)
}

func TestAuthService_LogoutIdempotent(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	mockSessions.On("DeleteByToken", mock.Anything, "some-token").Return(nil).Twice()

	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(mockUsers, mockSessions, jwtService)

	assert.NoError(t, service.Logout(context.Background(), "some-token"))
	assert.NoError(t, service.Logout(context.Background(), "some-token"))

	mockSessions.AssertExpectations(t)
}
