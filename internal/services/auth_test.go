package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/models"
	"github.com/sbilibin2017/quizcraft/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader *services.MockUserReader
	writer *services.MockUserWriter
	cache  *services.MockUserCache
	jwt    *services.MockJWTGenerator
	audit  *services.MockAuditPublisher
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader: services.NewMockUserReader(ctrl),
		writer: services.NewMockUserWriter(ctrl),
		cache:  services.NewMockUserCache(ctrl),
		jwt:    services.NewMockJWTGenerator(ctrl),
		audit:  services.NewMockAuditPublisher(ctrl),
	}
	return services.NewAuthService(m.reader, m.writer, m.cache, m.jwt, m.audit), m
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		setup    func(m authMocks)
		wantID   int64
		wantErr  error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pw1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, apperror.ErrNotFound)
				m.writer.EXPECT().Insert(gomock.Any(), "alice", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, hash string) (int64, error) {
						cost, err := bcrypt.Cost([]byte(hash))
						assert.NoError(t, err)
						assert.Equal(t, services.PasswordCost, cost)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw1")))
						return 1, nil
					})
				m.audit.EXPECT().Publish(gomock.Any(), "alice", models.ActionRegister, "user", int64(1))
			},
			wantID: 1,
		},
		{
			name:     "user already exists",
			username: "bob",
			password: "pw",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(&models.UserDB{ID: 2, Username: "bob"}, nil)
			},
			wantErr: apperror.ErrConflict,
		},
		{
			name:     "concurrent registration loses the race",
			username: "carol",
			password: "pw",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "carol").Return(nil, apperror.ErrNotFound)
				m.writer.EXPECT().Insert(gomock.Any(), "carol", gomock.Any()).Return(int64(0), apperror.ErrConflict)
			},
			wantErr: apperror.ErrConflict,
		},
		{
			name:     "reader error",
			username: "eve",
			password: "pw",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "eve").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "missing password",
			username: "dan",
			setup:    func(m authMocks) {},
			wantErr:  apperror.NewValidationError("password"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			id, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		password  string
		setup     func(m authMocks)
		wantToken string
		wantErr   error
	}{
		{
			name:     "successful login",
			password: "pw1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.jwt.EXPECT().Generate(gomock.Any(), "alice").Return("token123", nil)
				m.audit.EXPECT().Publish(gomock.Any(), "alice", models.ActionLogin, "user", int64(1))
			},
			wantToken: "token123",
		},
		{
			name:     "unknown user",
			password: "pw1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, apperror.ErrNotFound)
			},
			wantErr: apperror.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrong",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
			},
			wantErr: apperror.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			password: "pw1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "JWT generation error",
			password: "pw1",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.jwt.EXPECT().Generate(gomock.Any(), "alice").Return("", errors.New("jwt error"))
			},
			wantErr: errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			token, err := svc.Login(context.Background(), "alice", tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "", "")

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"username", "password"}, verr.Fields)
}

func TestAuthService_ResolveUser(t *testing.T) {
	alice := &models.UserDB{ID: 1, Username: "alice"}

	tests := []struct {
		name     string
		setup    func(m authMocks)
		wantUser *models.UserDB
		wantErr  error
	}{
		{
			name: "cache hit",
			setup: func(m authMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "alice").Return(alice, nil)
			},
			wantUser: alice,
		},
		{
			name: "cache miss fills cache",
			setup: func(m authMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, apperror.ErrNotFound)
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.cache.EXPECT().Set(gomock.Any(), alice).Return(nil)
			},
			wantUser: alice,
		},
		{
			name: "cache failures are ignored",
			setup: func(m authMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, errors.New("redis down"))
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.cache.EXPECT().Set(gomock.Any(), alice).Return(errors.New("redis down"))
			},
			wantUser: alice,
		},
		{
			name: "user no longer exists",
			setup: func(m authMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, apperror.ErrNotFound)
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, apperror.ErrNotFound)
			},
			wantErr: apperror.ErrUnauthenticated,
		},
		{
			name: "reader error",
			setup: func(m authMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, apperror.ErrNotFound)
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, apperror.ErrTimeout)
			},
			wantErr: apperror.ErrTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			user, err := svc.ResolveUser(context.Background(), "alice")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestAuthService_ResolveUser_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(reader, nil, nil, nil, nil)

	reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.UserDB{ID: 1, Username: "alice"}, nil)

	user, err := svc.ResolveUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}
