package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/finsight-app/finsight-api/models"
	"github.com/finsight-app/finsight-api/store"
)

const usersCollection = "users"

// ErrEmailTaken is returned when a signup reuses an existing account email.
var ErrEmailTaken = errors.New("email already registered")

// UserService is the repository for user records.
type UserService struct {
	store *store.Store
}

func NewUserService(s *store.Store) *UserService {
	return &UserService{store: s}
}

// Create inserts a new user. The email uniqueness check runs inside the
// collection's write lock, so two concurrent signups with the same email
// cannot both succeed.
func (s *UserService) Create(email, name, passwordHash string) (*models.User, error) {
	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	err := store.Update(s.store, usersCollection, func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, ErrEmailTaken
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the first user with the given email, if any.
func (s *UserService) FindByEmail(email string) (*models.User, bool) {
	for _, u := range store.ReadAll[models.User](s.store, usersCollection) {
		if u.Email == email {
			return &u, true
		}
	}
	return nil, false
}

// FindByID returns the user with the given id, if any.
func (s *UserService) FindByID(id string) (*models.User, bool) {
	for _, u := range store.ReadAll[models.User](s.store, usersCollection) {
		if u.ID == id {
			return &u, true
		}
	}
	return nil, false
}

// UpdateProfile changes the user's display name.
func (s *UserService) UpdateProfile(id, name string) (*models.User, error) {
	return s.update(id, func(u *models.User) {
		u.Name = name
	})
}

// SetPasswordHash replaces the stored password credential.
func (s *UserService) SetPasswordHash(id, passwordHash string) error {
	_, err := s.update(id, func(u *models.User) {
		u.PasswordHash = passwordHash
	})
	return err
}

// SetTOTP stores the TOTP secret and enabled flag for a user.
func (s *UserService) SetTOTP(id, secret string, enabled bool) error {
	_, err := s.update(id, func(u *models.User) {
		u.TOTPSecret = secret
		u.TOTPEnabled = enabled
	})
	return err
}

func (s *UserService) update(id string, mutate func(*models.User)) (*models.User, error) {
	var updated models.User
	err := store.Update(s.store, usersCollection, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID == id {
				mutate(&users[i])
				updated = users[i]
				return users, nil
			}
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
