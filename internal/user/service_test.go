package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

func newTestService(repo *MockRepository) *service {
	svc := NewService(repo).(*service)
	svc.cost = bcrypt.MinCost
	return svc
}

func validRegistration() Registration {
	return Registration{Username: "alice", Email: "Alice@Example.com", Password: "hunter22"}
}

func TestCreateUser_HashesPasswordAndDefaultsTier(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	svc := newTestService(repo)
	var stored *domain.User
	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.User) }).
		Return(&domain.User{ID: 1, Username: "alice", Membership: domain.MembershipFree}, nil)

	// ACT
	u, err := svc.CreateUser(context.Background(), validRegistration())

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.Equal(t, domain.MembershipFree, stored.Membership)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
}

func TestCreateUser_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Registration)
	}{
		{"short username", func(r *Registration) { r.Username = "al" }},
		{"long username", func(r *Registration) { r.Username = "abcdefghijklmnopqrstu" }},
		{"bad email", func(r *Registration) { r.Email = "not-an-email" }},
		{"short password", func(r *Registration) { r.Password = "12345" }},
		{"unknown membership", func(r *Registration) { r.Membership = "gold" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo)
			reg := validRegistration()
			tt.mutate(&reg)

			_, err := svc.CreateUser(context.Background(), reg)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.ErrorIs(t, err, domain.ErrInvalidState)
			repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	_, err := svc.CreateUser(context.Background(), validRegistration())

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: 1, Email: "alice@example.com", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
		u, err := newTestService(repo).Login(context.Background(), " Alice@example.com ", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, 1, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
		_, err := newTestService(repo).Login(context.Background(), "alice@example.com", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetUserByEmail", mock.Anything, "bob@example.com").Return(nil, nil)
		_, err := newTestService(repo).Login(context.Background(), "bob@example.com", "hunter22")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestCreateCharacter(t *testing.T) {
	t.Run("user must exist", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetUserByID", mock.Anything, 9).Return(nil, nil)
		_, err := newTestService(repo).CreateCharacter(context.Background(), 9, "Hero")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		repo.AssertNotCalled(t, "CreateCharacter", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("name length", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := newTestService(repo).CreateCharacter(context.Background(), 1, "H")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("created with defaults", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetUserByID", mock.Anything, 1).Return(&domain.User{ID: 1}, nil)
		repo.On("CreateCharacter", mock.Anything, 1, "Hero").Return(&domain.Character{
			ID: 5, UserID: 1, Name: "Hero", Level: domain.DefaultCharacterLevel, CurrentRealm: domain.RealmEarth,
		}, nil)

		c, err := newTestService(repo).CreateCharacter(context.Background(), 1, "  Hero ")

		require.NoError(t, err)
		assert.Equal(t, domain.RealmEarth, c.CurrentRealm)
		assert.False(t, c.IsAfk())
	})
}

func TestGetCharacter_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetCharacter", mock.Anything, 3).Return(nil, nil)

	_, err := newTestService(repo).GetCharacter(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestListCharacters_EmptyIsNotNil(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUserByID", mock.Anything, 1).Return(&domain.User{ID: 1}, nil)
	repo.On("ListCharactersByUser", mock.Anything, 1).Return(nil, nil)

	chars, err := newTestService(repo).ListCharacters(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, chars)
	assert.Empty(t, chars)
}

func TestListProfessions(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetCharacter", mock.Anything, 2).Return(&domain.Character{ID: 2}, nil)
	repo.On("ListProfessions", mock.Anything, 2).Return(nil, errors.New("boom"))

	_, err := newTestService(repo).ListProfessions(context.Background(), 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgListProfessionsFailed)
}
