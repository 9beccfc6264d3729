package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"odyssey/src/common"
	"odyssey/src/config"
	"odyssey/src/models"
	"odyssey/src/types"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

type AccountService struct {
	users    UserStore
	sessions SessionCache
	now      func() time.Time
}

// NewAccountService accepts a nil session cache; logins then simply
// skip token caching.
func NewAccountService(users UserStore, sessions SessionCache) *AccountService {
	return &AccountService{
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *AccountService) Register(body types.RegisterRequestBody) (*models.User, error) {
	if _, err := s.users.FindByEmail(body.Email); err == nil {
		return nil, common.BadRequestf("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := body.Role
	if role == "" {
		role = types.ROLE_CLIENT
	}
	user := models.User{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  string(hash),
		Role:      role,
		Active:    true,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AccountService) Login(ctx context.Context, body types.LoginRequestBody) (*types.SessionResponse, error) {
	user, err := s.users.FindByEmail(body.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.BadRequestf("Invalid email or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return nil, common.BadRequestf("Invalid email or password")
	}

	now := s.now()
	claims := types.Claims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.GetJWTSecret())
	if err != nil {
		return nil, err
	}
	if s.sessions != nil {
		s.sessions.Put(ctx, user.ID, token)
	}
	return &types.SessionResponse{Token: token, User: user}, nil
}

func (s *AccountService) FindByID(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("User not found")
		}
		return nil, err
	}
	return user, nil
}
