// Package memory provides a process-local UserRepository for local runs and tests.
package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is a thread-safe in-memory user collection.
// Callers always receive copies, never the stored documents.
type UserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*domain.User
	order []primitive.ObjectID // Insertion order, matching natural order in MongoDB
}

// NewUserStore returns an empty store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[primitive.ObjectID]*domain.User),
	}
}

var _ repository.UserRepository = (*UserStore)(nil)

func (s *UserStore) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}
	if user.Username == "" {
		return primitive.NilObjectID, errors.New("username is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}

	user.ID = primitive.NewObjectID()
	user.Count = 0
	user.Exercises = []domain.Exercise{}

	s.users[user.ID] = copyUser(user)
	s.order = append(s.order, user.ID)
	return user.ID, nil
}

func (s *UserStore) GetAll(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, *copyUser(s.users[id]))
	}
	return users, nil
}

func (s *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyUser(user), nil
}

func (s *UserStore) AppendExercise(ctx context.Context, id primitive.ObjectID, exercise domain.Exercise) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if exercise.ID == primitive.NilObjectID {
		exercise.ID = primitive.NewObjectID()
	}
	user.Exercises = append(user.Exercises, copyExercise(exercise))
	user.Count++

	return copyUser(user), nil
}

func (s *UserStore) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := int64(len(s.users))
	s.users = make(map[primitive.ObjectID]*domain.User)
	s.order = nil
	return deleted, nil
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	c.Exercises = make([]domain.Exercise, len(u.Exercises))
	for i, ex := range u.Exercises {
		c.Exercises[i] = copyExercise(ex)
	}
	return &c
}

func copyExercise(ex domain.Exercise) domain.Exercise {
	if ex.Duration != nil {
		d := *ex.Duration
		ex.Duration = &d
	}
	return ex
}
