package service

import (
	"context"
	"strings"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
	"go.uber.org/zap"
)

const userSearchLimit = 10

// UserService handles the register of users that own receipts and bills
type UserService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, log *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, log: log}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	UserID string
	Name   string
	Site   string
	Phone  string
}

// CreateUser creates a new user
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	user := &entity.User{
		UserID: strings.TrimSpace(input.UserID),
		Name:   strings.TrimSpace(input.Name),
		Site:   input.Site,
		Phone:  input.Phone,
	}

	if user.UserID == "" {
		return nil, apperror.NewInvalidInputError("userId", "User ID is required")
	}
	if user.Name == "" {
		return nil, apperror.NewInvalidInputError("name", "Name is required")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, classifyCreate(err, "User ID already exists", "Failed to create user")
	}

	return user, nil
}

// GetUser retrieves a user by its userId
func (s *UserService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, classify(err, "Failed to fetch user")
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers lists all users
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, classify(err, "Failed to fetch users")
	}
	return users, nil
}

// SearchUsers finds users whose userId or name contains query
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]entity.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.User{}, nil
	}

	users, err := s.userRepo.Search(ctx, query, userSearchLimit)
	if err != nil {
		return nil, classify(err, "Failed to search users")
	}
	return users, nil
}

// UpdateUserInput represents the update user input. Nil fields are left as is.
type UpdateUserInput struct {
	UserID string
	Name   *string
	Site   *string
	Phone  *string
}

// UpdateUser updates a user's details. The userId itself cannot change.
func (s *UserService) UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewInvalidInputError("name", "Name cannot be empty")
		}
		user.Name = name
	}
	if input.Site != nil {
		user.Site = *input.Site
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, classify(err, "Failed to update user")
	}

	return user, nil
}

// DeleteUser removes a user along with all of its return receipts.
// It returns the number of receipts removed.
func (s *UserService) DeleteUser(ctx context.Context, userID string) (int64, error) {
	found, receipts, err := s.userRepo.DeleteWithReceipts(ctx, userID)
	if err != nil {
		return 0, classify(err, "Failed to delete user")
	}
	if !found {
		return 0, apperror.NewNotFoundError("User")
	}

	s.log.Info("user deleted",
		zap.String("user_id", userID),
		zap.Int64("receipts_deleted", receipts),
	)
	return receipts, nil
}
