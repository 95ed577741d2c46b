package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/repos"
	"github.com/lasudevlab/learnhub-backend/internal/requestdata"
	"github.com/lasudevlab/learnhub-backend/internal/types"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, profile *types.Profile) error
	LoginUser(ctx context.Context, email, password string) (string, string, error)
	RefreshUser(ctx context.Context) (string, string, error)
	LogoutUser(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	profileRepo   repos.ProfileRepo
	avatarService AvatarService
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	profileRepo repos.ProfileRepo,
	avatarService AvatarService,
	userTokenRepo repos.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:            db,
		log:           log.With("service", "AuthService"),
		profileRepo:   profileRepo,
		avatarService: avatarService,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// RegisterUser creates the profile row with its starting progression state
// (xp 0, level 1, empty badge set) and a generated initials avatar.
func (as *authService) RegisterUser(ctx context.Context, profile *types.Profile) error {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	profile.FullName = strings.TrimSpace(profile.FullName)
	if profile.Email == "" || profile.Password == "" {
		return fmt.Errorf("Email and password are required")
	}

	exists, exErr := as.profileRepo.EmailExists(ctx, nil, profile.Email)
	if exErr != nil {
		return fmt.Errorf("Failed to check email: %w", exErr)
	}
	if exists {
		return fmt.Errorf("Email already registered")
	}

	hashed, hErr := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if hErr != nil {
		return fmt.Errorf("Failed to hash password: %w", hErr)
	}
	profile.Password = string(hashed)

	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile.ID = uuid.New()
		profile.Level = 1
		if err := profile.SetBadges([]string{}); err != nil {
			return fmt.Errorf("Failed to encode badges: %w", err)
		}
		if aErr := as.avatarService.CreateAndUploadAvatar(ctx, profile); aErr != nil {
			as.log.Warn("Failed to create profile avatar", "error", aErr)
		}
		if _, cErr := as.profileRepo.Create(ctx, tx, []*types.Profile{profile}); cErr != nil {
			return fmt.Errorf("Failed to create profile: %w", cErr)
		}
		return nil
	})
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, pErr := as.profileRepo.GetByEmail(ctx, nil, email)
	if pErr != nil {
		return "", "", fmt.Errorf("Error retrieving profile by email: %w", pErr)
	}
	if profile == nil {
		return "", "", fmt.Errorf("Invalid email")
	}
	if hErr := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); hErr != nil {
		return "", "", fmt.Errorf("Invalid password")
	}

	var accessToken string
	var refreshToken string
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dErr := as.userTokenRepo.DeleteByUserID(ctx, tx, profile.ID); dErr != nil {
			return fmt.Errorf("Failed to clear existing tokens: %w", dErr)
		}
		tok, genErr := as.generateAccessToken(profile)
		if genErr != nil {
			return fmt.Errorf("Generate access token error: %w", genErr)
		}
		accessToken = tok
		refreshToken = uuid.New().String()
		userToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       profile.ID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, cErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); cErr != nil {
			as.log.Warn("Create user token error", "error", cErr)
			return fmt.Errorf("Create user token error: %w", cErr)
		}
		return nil
	}); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context) (string, string, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		as.log.Warn("No request data found in context")
		return "", "", fmt.Errorf("No request data found in context")
	}
	if rd.RefreshToken == "" {
		as.log.Warn("Refresh token not found in request data")
		return "", "", fmt.Errorf("Refresh token not found in request data")
	}

	var accessToken string
	var newRefreshToken string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, ftErr := as.userTokenRepo.GetByRefreshToken(ctx, tx, rd.RefreshToken)
		if ftErr != nil {
			as.log.Warn("Error fetching refresh token", "error", ftErr)
			return fmt.Errorf("Error fetching refresh token: %w", ftErr)
		}
		if existing == nil {
			return fmt.Errorf("Unknown refresh token")
		}
		if existing.ExpiresAt.Before(time.Now()) {
			if dErr := as.userTokenRepo.DeleteByUserID(ctx, tx, existing.UserID); dErr != nil {
				as.log.Warn("Refresh token expired, error deleting", "error", dErr)
				return fmt.Errorf("Refresh token expired, error deleting: %w", dErr)
			}
			return fmt.Errorf("Refresh token expired")
		}

		profile, pErr := as.profileRepo.GetByID(ctx, tx, existing.UserID)
		if pErr != nil {
			return fmt.Errorf("Failed to load profile for refresh: %w", pErr)
		}
		if profile == nil {
			return fmt.Errorf("No profile found for the given refresh token")
		}

		tok, genErr := as.generateAccessToken(profile)
		if genErr != nil {
			return fmt.Errorf("Failed to generate new access token: %w", genErr)
		}
		accessToken = tok
		newRefreshToken = uuid.New().String()

		if dErr := as.userTokenRepo.DeleteByUserID(ctx, tx, profile.ID); dErr != nil {
			return fmt.Errorf("Failed to remove old refresh token: %w", dErr)
		}
		newToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       profile.ID,
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, cErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&newToken}); cErr != nil {
			return fmt.Errorf("Failed to create new user token: %w", cErr)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		as.log.Warn("No request data found in context")
		return fmt.Errorf("No request data found in context")
	}
	if rd.UserID == uuid.Nil {
		return fmt.Errorf("No user id in request data")
	}
	if err := as.userTokenRepo.DeleteByUserID(ctx, nil, rd.UserID); err != nil {
		as.log.Warn("Error deleting user tokens", "error", err)
		return fmt.Errorf("Error deleting user tokens: %w", err)
	}
	return nil
}

func (as *authService) generateAccessToken(profile *types.Profile) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, nil
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("Failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("Invalid or expired JWT token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("Invalid user id in token: %w", err)
	}
	rd := &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
