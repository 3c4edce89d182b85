package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"peche-payments-be/internal/config"
	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/pkg/logger"
	"peche-payments-be/internal/pkg/mailer"
	"peche-payments-be/internal/repository/contract"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidOrExpiredOtp = errors.New("invalid or expired otp")
	ErrOtpDispatchFailed   = errors.New("failed to send otp email")
)

const (
	otpTTL     = 5 * time.Minute
	sessionTTL = 24 * time.Hour
	adminRole  = "admin"
)

type IAuthService interface {
	Login(ctx context.Context, request *dto.LoginRequest) error
	VerifyOtp(ctx context.Context, request *dto.VerifyOtpRequest) (*dto.VerifyOtpResponse, error)
}

type authService struct {
	credentials []config.AdminCredential
	jwtSecret   string
	otpRepo     contract.OtpRepository
	mailer      mailer.IEmailService
	logger      logger.ILogger
}

func NewAuthService(cfg *config.Config, otpRepo contract.OtpRepository, adminMailer mailer.IEmailService, logger logger.ILogger) IAuthService {
	return &authService{
		credentials: cfg.Admin.Credentials,
		jwtSecret:   cfg.Admin.JWTSecret,
		otpRepo:     otpRepo,
		mailer:      adminMailer,
		logger:      logger,
	}
}

// Login checks the submitted credentials and, on a match, issues a fresh
// OTP to the admin's email. A repeat login overwrites any pending OTP.
func (s *authService) Login(ctx context.Context, request *dto.LoginRequest) error {
	if !s.credentialsMatch(request.Email, request.Password) {
		s.logger.Warn("AuthService", "login rejected", map[string]interface{}{
			"email": request.Email,
		})
		return ErrInvalidCredentials
	}

	otp, err := generateOtp()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	entry := &entity.OtpEntry{
		Code:      otp,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otpRepo.Save(ctx, request.Email, entry); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	if err := s.mailer.SendOTP(request.Email, otp); err != nil {
		s.logger.Error("AuthService", "otp email dispatch failed", map[string]interface{}{
			"email": request.Email,
			"error": err.Error(),
		})
		return ErrOtpDispatchFailed
	}

	s.logger.Info("AuthService", "otp issued", map[string]interface{}{
		"email": request.Email,
	})
	return nil
}

// VerifyOtp consumes the pending OTP and mints an admin session token.
// The OTP is single use: it is deleted whether expired or accepted.
func (s *authService) VerifyOtp(ctx context.Context, request *dto.VerifyOtpRequest) (*dto.VerifyOtpResponse, error) {
	entry, err := s.otpRepo.Get(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to load otp: %w", err)
	}
	if entry == nil {
		return nil, ErrInvalidOrExpiredOtp
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = s.otpRepo.Delete(ctx, request.Email)
		return nil, ErrInvalidOrExpiredOtp
	}
	if entry.Code != request.Otp {
		return nil, ErrInvalidOrExpiredOtp
	}

	if err := s.otpRepo.Delete(ctx, request.Email); err != nil {
		s.logger.Warn("AuthService", "failed to delete consumed otp", map[string]interface{}{
			"email": request.Email,
			"error": err.Error(),
		})
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": request.Email,
		"role":  adminRole,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.logger.Info("AuthService", "admin session created", map[string]interface{}{
		"email": request.Email,
	})

	return &dto.VerifyOtpResponse{
		Token: signed,
		Admin: dto.AdminDTO{Email: request.Email},
	}, nil
}

func (s *authService) credentialsMatch(email, password string) bool {
	for _, cred := range s.credentials {
		if cred.Email == email && cred.Password == password {
			return true
		}
	}
	return false
}

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
