// userservice.go
package userservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/haguru/userdirectory/internal/interfaces"
	"github.com/haguru/userdirectory/internal/models"
	"github.com/haguru/userdirectory/pkg/helper"
)

type UserService struct {
	Registry interfaces.UserRegistry
	Logger   interfaces.Logger
	Metrics  interfaces.Metrics
}

// NewUserService creates a new UserService instance. metrics may be nil.
func NewUserService(registry interfaces.UserRegistry, logger interfaces.Logger, metrics interfaces.Metrics) *UserService {
	return &UserService{
		Registry: registry,
		Logger:   logger,
		Metrics:  metrics,
	}
}

// SeedPlaceholder stores the startup placeholder record keyed by
// "User" followed by the start time in milliseconds.
func (s *UserService) SeedPlaceholder(ctx context.Context, startedAt time.Time) models.User {
	funcName := helper.ShortFuncName(helper.GetFuncName())
	username := PlaceholderUsernamePrefix + strconv.FormatInt(startedAt.UnixMilli(), 10)
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	user := models.NewUser(username, PlaceholderDisplayName, PlaceholderPassword)
	s.Registry.Put(username, *user)
	s.recordSize()

	s.Logger.Info("Seeded placeholder user", "func", funcName, "user", username)
	return *user
}

// ListUsers returns every stored record, sorted by username unless order is Unsorted.
func (s *UserService) ListUsers(ctx context.Context, order interfaces.SortOrder) []models.User {
	funcName := helper.ShortFuncName(helper.GetFuncName())
	s.Logger.Debug("Entering function", "func", funcName, "order", order.String())

	users := s.Registry.List()
	SortUsers(users, order)
	return users
}

// GetUser looks a record up by its registry key.
func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	funcName := helper.ShortFuncName(helper.GetFuncName())
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	if username == "" {
		return nil, ErrUserNotFound
	}
	user, ok := s.Registry.Get(username)
	if !ok {
		return nil, fmt.Errorf("%s: %w", username, ErrUserNotFound)
	}
	return &user, nil
}

// ReplaceUser decodes data as a JSON user and stores it under username,
// whatever the decoded record's own username is.
func (s *UserService) ReplaceUser(ctx context.Context, username string, data []byte) error {
	funcName := helper.ShortFuncName(helper.GetFuncName())
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	if username == "" {
		return ErrUserNotFound
	}

	user, err := decodeUser(data)
	if err != nil {
		s.Logger.Error(ErrMsgMalformedUser, "func", funcName, "user", username, "error", err)
		return fmt.Errorf("%s: %w", err.Error(), ErrMalformedUser)
	}

	s.Registry.Put(username, *user)
	s.recordSize()
	return nil
}

// CreateUser stores a new record under username. It fails with
// ErrUserAlreadyExists if the key is taken; the check and the insert are atomic.
func (s *UserService) CreateUser(ctx context.Context, username, displayName, password string) error {
	funcName := helper.ShortFuncName(helper.GetFuncName())
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	if !s.Registry.PutIfAbsent(username, *models.NewUser(username, displayName, password)) {
		s.Logger.Warn(ErrMsgUserAlreadyExists, "func", funcName, "user", username)
		return fmt.Errorf("%s: %w", username, ErrUserAlreadyExists)
	}

	s.recordSize()
	s.Logger.Info("User created", "func", funcName, "user", username)
	return nil
}

// ModifyUser overwrites the display name and password of an existing
// record. The username is left alone and the last writer wins.
func (s *UserService) ModifyUser(ctx context.Context, username, displayName, password string) error {
	funcName := helper.ShortFuncName(helper.GetFuncName())
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	if username == "" {
		return ErrUserNotFound
	}
	updated := s.Registry.Update(username, func(user *models.User) {
		user.DisplayName = displayName
		user.Password = password
	})
	if !updated {
		return fmt.Errorf("%s: %w", username, ErrUserNotFound)
	}
	return nil
}

// DeleteUser removes the record under username. Removing a missing record
// is not an error; only an empty username is.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	funcName := helper.ShortFuncName(helper.GetFuncName())
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	if username == "" {
		return ErrUserNotFound
	}
	s.Registry.Remove(username)
	s.recordSize()
	return nil
}

func (s *UserService) recordSize() {
	if s.Metrics != nil {
		s.Metrics.SetGauge(RegisteredUsers, float64(s.Registry.Len()))
	}
}

// decodeUser parses a single JSON object into a user. Keys must match the
// field names exactly; unknown keys, non-string values and a null
// document are rejected.
func decodeUser(data []byte) (*models.User, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("request body is null")
	}

	user := &models.User{}
	targets := map[string]*string{
		"username":    &user.Username,
		"displayName": &user.DisplayName,
		"password":    &user.Password,
	}
	for key, raw := range fields {
		target, ok := targets[key]
		if !ok {
			return nil, fmt.Errorf("unknown field %q", key)
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
	}
	return user, nil
}
