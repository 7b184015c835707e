package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"alcyxob/exercise-tracker/internal/storage"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultDeleteCode guards the bulk delete when no code is configured.
const DefaultDeleteCode = "501D500D58E49BF24CFAEAF412CFF6"

var ErrArchiveFailed = errors.New("failed to archive users before deletion")

// DeleteCodeGate compares a submitted code against the configured one.
// It is a guard against accidents, not a credential.
type DeleteCodeGate struct {
	code []byte
	hash []byte
}

// NewDeleteCodeGate prefers a bcrypt hash when one is given, then the plain
// code, then DefaultDeleteCode.
func NewDeleteCodeGate(code, hash string) DeleteCodeGate {
	if hash != "" {
		return DeleteCodeGate{hash: []byte(hash)}
	}
	if code == "" {
		code = DefaultDeleteCode
	}
	return DeleteCodeGate{code: []byte(code)}
}

// Allows reports whether candidate opens the gate.
func (g DeleteCodeGate) Allows(candidate string) bool {
	if len(g.hash) > 0 {
		return bcrypt.CompareHashAndPassword(g.hash, []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare(g.code, []byte(candidate)) == 1
}

// ClearResult describes the outcome of a bulk delete request.
type ClearResult struct {
	Authorized bool
	Deleted    int64
	ArchiveKey string // Empty when archiving is disabled
}

type AdminService interface {
	ClearTheDecks(ctx context.Context, deleteCode string) (*ClearResult, error)
}

type adminService struct {
	userRepo repository.UserRepository
	archive  storage.ArchiveStorage // nil disables archiving
	gate     DeleteCodeGate
	now      func() time.Time
}

// NewAdminService creates the bulk-delete service. archive may be nil.
func NewAdminService(userRepo repository.UserRepository, archive storage.ArchiveStorage, gate DeleteCodeGate) AdminService {
	return &adminService{
		userRepo: userRepo,
		archive:  archive,
		gate:     gate,
		now:      time.Now,
	}
}

// ClearTheDecks deletes every user when deleteCode opens the gate. With
// archiving enabled, the users are uploaded first and nothing is deleted if
// the upload fails.
func (s *adminService) ClearTheDecks(ctx context.Context, deleteCode string) (*ClearResult, error) {
	if !s.gate.Allows(deleteCode) {
		return &ClearResult{Authorized: false}, nil
	}

	result := &ClearResult{Authorized: true}

	if s.archive != nil {
		key, err := s.archiveUsers(ctx)
		if err != nil {
			return nil, err
		}
		result.ArchiveKey = key
	}

	deleted, err := s.userRepo.DeleteAll(ctx)
	if err != nil {
		return nil, translateRepoError(err)
	}
	result.Deleted = deleted
	return result, nil
}

func (s *adminService) archiveUsers(ctx context.Context) (string, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return "", translateRepoError(err)
	}
	if users == nil {
		users = []domain.User{}
	}

	body, err := json.Marshal(users)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveFailed, err)
	}

	name := fmt.Sprintf("users-%s-%s.json", s.now().UTC().Format("20060102T150405Z"), uuid.NewString())
	objectKey := path.Join("archives", name)

	if err := s.archive.PutObject(ctx, objectKey, "application/json", body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveFailed, err)
	}
	return objectKey, nil
}
