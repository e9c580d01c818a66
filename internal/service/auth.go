package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/crypto"
	"github.com/pixiapp/pixi-go/internal/model"
	"github.com/pixiapp/pixi-go/internal/policy"
	"github.com/pixiapp/pixi-go/internal/token"
)

const minPasswordLength = 5

// AuthService handles registration and login.
type AuthService struct {
	users  UserStore
	codec  *token.Codec
	policy *policy.Policy
}

func NewAuthService(users UserStore, codec *token.Codec, pol *policy.Policy) *AuthService {
	return &AuthService{users: users, codec: codec, policy: pol}
}

// Register creates a user account and issues a token for it. The id is
// server-generated; the admin flag from the request is honored only when the
// policy allows it.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.AuthResponse{}, apperror.New(apperror.MissingParameters,
			"missing username and or password parameters")
	}
	if len(req.Password) < minPasswordLength {
		return model.AuthResponse{}, apperror.New(apperror.MissingParameters,
			"password length too short, minimum of 5 characters")
	}
	if req.AccountBalance < 0 {
		return model.AuthResponse{}, apperror.New(apperror.InvalidAccountBalance,
			"account balance must not be negative")
	}

	// Best-effort duplicate check for a friendly error; the unique email
	// index is what actually closes the race.
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return model.AuthResponse{}, apperror.New(apperror.AlreadyRegistered,
			"user is already registered")
	} else if !apperror.Is(err, apperror.NotFound) {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, apperror.Wrap(apperror.Internal, "hashing password", err)
	}

	isAdmin := req.IsAdmin && s.policy.CanSetAdmin(nil)

	user := &model.User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		PasswordHash:   hash,
		Name:           req.Name,
		AccountBalance: req.AccountBalance,
		IsAdmin:        isAdmin,
		AllPictures:    []string{},
		OnboardingDate: time.Now().UTC(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return model.AuthResponse{}, err
	}

	signed, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}

	slog.Info("user registered", "user_id", user.ID)

	return model.AuthResponse{Message: "x-access-token", Token: signed, ID: user.ID}, nil
}

// Login checks the credentials and issues a fresh token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.AuthResponse{}, apperror.New(apperror.MissingParameters,
			"missing username and or password parameters")
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperror.Is(err, apperror.NotFound) {
			return model.AuthResponse{}, apperror.New(apperror.InvalidCredentials, "invalid login")
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, apperror.New(apperror.InvalidCredentials, "invalid login")
	}

	signed, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Message: "x-access-token", Token: signed}, nil
}
