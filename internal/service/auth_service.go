package service

import (
	"context"
	"time"

	"insygth/internal/config"
	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the JWT payload carried by access and refresh tokens.
// TokenType distinguishes the two so a refresh token can never be used
// directly against protected endpoints.
type Claims struct {
	UserID    string `json:"uid"`
	Role      string `json:"role"`
	TokenType string `json:"typ"` // access | refresh
	jwt.RegisteredClaims
}

// AuthService handles signup, role-separated sign-in and token refresh.
type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error)
	Signin(ctx context.Context, req dto.SigninRequest, role string) (*dto.SigninResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.SigninResponse, error)
}

type authService struct {
	users    repository.UserRepository
	requests repository.StaffRequestRepository
	notifier Notifier
	cfg      *config.Config
}

func NewAuthService(
	users repository.UserRepository,
	requests repository.StaffRequestRepository,
	notifier Notifier,
	cfg *config.Config,
) AuthService {
	return &authService{users: users, requests: requests, notifier: notifier, cfg: cfg}
}

// Signup creates an account. Owners are active immediately; staff accounts
// start inactive behind a pending approval request.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if notFound(err) != ErrNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.Role,
		BusinessName: req.BusinessName,
		Active:       req.Role == "owner",
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	pending := false
	if req.Role == "staff" {
		pending = true
		sr := &model.StaffRequest{
			UserID: u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Status: model.StaffPending,
		}
		if err := s.requests.Create(ctx, sr); err != nil {
			return nil, err
		}
		notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
			Type:    "staff_signup_request",
			Title:   "New staff signup",
			Message: u.Name + " (" + u.Email + ") is waiting for approval",
		})
	}

	return &dto.SignupResponse{User: *userToResponse(u), PendingApproval: pending}, nil
}

// Signin authenticates against the endpoint's role. A valid staff account
// that has not been approved yet gets ErrAccountPending, not a generic
// credential failure.
func (s *authService) Signin(ctx context.Context, req dto.SigninRequest, role string) (*dto.SigninResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if notFound(err) == ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Role != role {
		return nil, ErrWrongRole
	}
	if !u.Active {
		return nil, ErrAccountPending
	}
	return s.issueTokens(u)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.SigninResponse, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid || claims.TokenType != "refresh" {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.Active {
		return nil, ErrAccountPending
	}
	return s.issueTokens(u)
}

func (s *authService) issueTokens(u *model.User) (*dto.SigninResponse, error) {
	accessTTL := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	refreshTTL := time.Duration(s.cfg.JWTRefreshHours) * time.Hour

	access, err := s.signToken(u, "access", accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(u, "refresh", refreshTTL)
	if err != nil {
		return nil, err
	}

	return &dto.SigninResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(accessTTL.Seconds()),
		User:         *userToResponse(u),
	}, nil
}

func (s *authService) signToken(u *model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    u.ID.String(),
		Role:      u.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		BusinessName: u.BusinessName,
		Active:       u.Active,
	}
}
