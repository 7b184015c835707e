package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository" // Import repository package
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrValidationFailed = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ExerciseInput is the raw, unvalidated exercise submission.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

// --- Service Interface ---
type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	AddExercise(ctx context.Context, userID primitive.ObjectID, input ExerciseInput) (*domain.User, *domain.Exercise, error)
	GetExerciseLog(ctx context.Context, userID primitive.ObjectID, q LogQuery) (*domain.ExerciseLog, error)
}

// --- Service Implementation ---

// userService implements the UserService interface.
type userService struct {
	userRepo     repository.UserRepository
	storeTimeout time.Duration
	now          func() time.Time
}

// NewUserService creates a new instance of userService.
// storeTimeout bounds each store call; zero leaves the request context as is.
func NewUserService(userRepo repository.UserRepository, storeTimeout time.Duration) UserService {
	return &userService{
		userRepo:     userRepo,
		storeTimeout: storeTimeout,
		now:          time.Now,
	}
}

// CreateUser registers a new username.
func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidationFailed)
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	user := &domain.User{Username: username}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, translateRepoError(err)
	}
	user.ID = userID
	return user, nil
}

// ListUsers returns every stored user document.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, translateRepoError(err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// AddExercise coerces the submission and appends it to the user's log.
// Malformed dates default to today and non-numeric durations are stored as null;
// nothing is rejected.
func (s *userService) AddExercise(ctx context.Context, userID primitive.ObjectID, input ExerciseInput) (*domain.User, *domain.Exercise, error) {
	exercise := domain.Exercise{
		ID:          primitive.NewObjectID(),
		Description: input.Description,
		Date:        NormalizeDate(input.Date, s.now()),
	}
	if d, ok := ParseLeadingInt(input.Duration); ok {
		f := float64(d)
		exercise.Duration = &f
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	user, err := s.userRepo.AppendExercise(ctx, userID, exercise)
	if err != nil {
		return nil, nil, translateRepoError(err)
	}
	return user, &exercise, nil
}

// GetExerciseLog loads the user and assembles the filtered log.
func (s *userService) GetExerciseLog(ctx context.Context, userID primitive.ObjectID, q LogQuery) (*domain.ExerciseLog, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return AssembleLog(user, q), nil
}

func (s *userService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// translateRepoError maps repository sentinels to service errors, keeping
// the underlying message for operator logs.
func translateRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrUsernameTaken
	case errors.Is(err, repository.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
