package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"peche-payments-be/internal/config"
	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/repository/memory"
)

const testJwtSecret = "test-secret"

func newTestAuthService(mailer *fakeMailer) (IAuthService, *memory.OtpRepository) {
	cfg := &config.Config{
		Admin: config.AdminConfig{
			Credentials: []config.AdminCredential{
				{Email: "admin@peche.com", Password: "hunter2"},
			},
			JWTSecret: testJwtSecret,
		},
	}
	otpRepo := memory.NewOtpRepository(5 * time.Minute)
	svc := NewAuthService(cfg, otpRepo, mailer, nopLogger{})
	return svc, otpRepo.(*memory.OtpRepository)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@peche.com", "wrong"},
		{"unknown email", "nobody@peche.com", "hunter2"},
		{"empty credentials", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mail := &fakeMailer{}
			svc, _ := newTestAuthService(mail)

			err := svc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.password})

			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Empty(t, mail.otpCalls, "no OTP should be sent on a rejected login")
		})
	}
}

func TestLoginIssuesOtp(t *testing.T) {
	mail := &fakeMailer{}
	svc, otpRepo := newTestAuthService(mail)

	err := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@peche.com", Password: "hunter2"})
	assert.NoError(t, err)

	assert.Len(t, mail.otpCalls, 1)
	assert.Equal(t, "admin@peche.com", mail.otpRecipients[0])
	assert.Len(t, mail.otpCalls[0], 6, "OTP is a 6-digit code")

	entry, err := otpRepo.Get(context.Background(), "admin@peche.com")
	assert.NoError(t, err)
	if assert.NotNil(t, entry) {
		assert.Equal(t, mail.otpCalls[0], entry.Code)
		assert.True(t, entry.ExpiresAt.After(time.Now()))
	}
}

func TestLoginOverwritesPendingOtp(t *testing.T) {
	mail := &fakeMailer{}
	svc, otpRepo := newTestAuthService(mail)
	ctx := context.Background()
	req := &dto.LoginRequest{Email: "admin@peche.com", Password: "hunter2"}

	assert.NoError(t, svc.Login(ctx, req))
	assert.NoError(t, svc.Login(ctx, req))

	entry, _ := otpRepo.Get(ctx, "admin@peche.com")
	if assert.NotNil(t, entry) {
		assert.Equal(t, mail.otpCalls[1], entry.Code, "the stored OTP is the most recently issued one")
	}
}

func TestLoginFailsWhenOtpMailFails(t *testing.T) {
	mail := &fakeMailer{failWith: errBoom}
	svc, _ := newTestAuthService(mail)

	err := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@peche.com", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrOtpDispatchFailed)
}

func TestVerifyOtpMintsAdminToken(t *testing.T) {
	mail := &fakeMailer{}
	svc, _ := newTestAuthService(mail)
	ctx := context.Background()

	assert.NoError(t, svc.Login(ctx, &dto.LoginRequest{Email: "admin@peche.com", Password: "hunter2"}))

	res, err := svc.VerifyOtp(ctx, &dto.VerifyOtpRequest{Email: "admin@peche.com", Otp: mail.otpCalls[0]})
	assert.NoError(t, err)
	assert.Equal(t, "admin@peche.com", res.Admin.Email)

	token, err := jwt.Parse(res.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "admin@peche.com", claims["email"])

	exp, _ := claims.GetExpirationTime()
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp.Time, time.Minute)
}

func TestVerifyOtpIsSingleUse(t *testing.T) {
	mail := &fakeMailer{}
	svc, _ := newTestAuthService(mail)
	ctx := context.Background()

	assert.NoError(t, svc.Login(ctx, &dto.LoginRequest{Email: "admin@peche.com", Password: "hunter2"}))
	req := &dto.VerifyOtpRequest{Email: "admin@peche.com", Otp: mail.otpCalls[0]}

	_, err := svc.VerifyOtp(ctx, req)
	assert.NoError(t, err)

	_, err = svc.VerifyOtp(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOtp, "a consumed OTP cannot be replayed")
}

func TestVerifyOtpRejectsWrongCode(t *testing.T) {
	mail := &fakeMailer{}
	svc, _ := newTestAuthService(mail)
	ctx := context.Background()

	assert.NoError(t, svc.Login(ctx, &dto.LoginRequest{Email: "admin@peche.com", Password: "hunter2"}))

	_, err := svc.VerifyOtp(ctx, &dto.VerifyOtpRequest{Email: "admin@peche.com", Otp: "000000"})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOtp)
}

func TestVerifyOtpRejectsExpiredCode(t *testing.T) {
	mail := &fakeMailer{}
	svc, otpRepo := newTestAuthService(mail)
	ctx := context.Background()

	entry := &entity.OtpEntry{Code: "123456", ExpiresAt: time.Now().Add(-time.Second)}
	assert.NoError(t, otpRepo.Save(ctx, "admin@peche.com", entry))

	_, err := svc.VerifyOtp(ctx, &dto.VerifyOtpRequest{Email: "admin@peche.com", Otp: "123456"})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOtp)

	stored, _ := otpRepo.Get(ctx, "admin@peche.com")
	assert.Nil(t, stored, "an expired OTP is deleted on first use")
}

func TestVerifyOtpWithoutLogin(t *testing.T) {
	svc, _ := newTestAuthService(&fakeMailer{})

	_, err := svc.VerifyOtp(context.Background(), &dto.VerifyOtpRequest{Email: "admin@peche.com", Otp: "123456"})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOtp)
}

func TestGenerateOtpRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		otp, err := generateOtp()
		assert.NoError(t, err)
		assert.Len(t, otp, 6)
		assert.GreaterOrEqual(t, otp, "100000")
		assert.LessOrEqual(t, otp, "999999")
	}
}
