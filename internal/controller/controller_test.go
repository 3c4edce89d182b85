package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/pkg/serverutils"
	"peche-payments-be/internal/service"
)

type stubAuthService struct {
	loginErr  error
	verifyErr error
	verifyRes *dto.VerifyOtpResponse
}

func (s *stubAuthService) Login(context.Context, *dto.LoginRequest) error { return s.loginErr }

func (s *stubAuthService) VerifyOtp(context.Context, *dto.VerifyOtpRequest) (*dto.VerifyOtpResponse, error) {
	return s.verifyRes, s.verifyErr
}

type stubSubscriberService struct {
	subscribeErr error
}

func (s *stubSubscriberService) Subscribe(_ context.Context, req *dto.SubscribeRequest) (*dto.SubscriberResponse, error) {
	if s.subscribeErr != nil {
		return nil, s.subscribeErr
	}
	return &dto.SubscriberResponse{Email: req.Email}, nil
}

func (s *stubSubscriberService) GetSubscribers(context.Context) ([]*dto.SubscriberResponse, error) {
	return nil, nil
}

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	register(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, serverutils.BaseResponse[json.RawMessage]) {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var envelope serverutils.BaseResponse[json.RawMessage]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestLoginRejectsInvalidBody(t *testing.T) {
	app := newTestApp(NewAuthController(&stubAuthService{}).RegisterRoutes)

	status, envelope := postJSON(t, app, "/admin/login", map[string]string{"email": "not-an-email"})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "validation failed")
}

func TestLoginMapsInvalidCredentialsTo401(t *testing.T) {
	app := newTestApp(NewAuthController(&stubAuthService{loginErr: service.ErrInvalidCredentials}).RegisterRoutes)

	status, envelope := postJSON(t, app, "/admin/login", dto.LoginRequest{Email: "admin@peche.com", Password: "wrong"})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.False(t, envelope.Success)
}

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(NewAuthController(&stubAuthService{}).RegisterRoutes)

	status, envelope := postJSON(t, app, "/admin/login", dto.LoginRequest{Email: "admin@peche.com", Password: "hunter2"})

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, envelope.Success)
}

func TestVerifyOtpReturnsSession(t *testing.T) {
	stub := &stubAuthService{verifyRes: &dto.VerifyOtpResponse{
		Token: "signed.jwt.token",
		Admin: dto.AdminDTO{Email: "admin@peche.com"},
	}}
	app := newTestApp(NewAuthController(stub).RegisterRoutes)

	status, envelope := postJSON(t, app, "/admin/verify-otp", dto.VerifyOtpRequest{Email: "admin@peche.com", Otp: "123456"})

	assert.Equal(t, fiber.StatusOK, status)
	var res dto.VerifyOtpResponse
	assert.NoError(t, json.Unmarshal(envelope.Data, &res))
	assert.Equal(t, "signed.jwt.token", res.Token)
}

func TestVerifyOtpMapsBadOtpTo401(t *testing.T) {
	app := newTestApp(NewAuthController(&stubAuthService{verifyErr: service.ErrInvalidOrExpiredOtp}).RegisterRoutes)

	status, _ := postJSON(t, app, "/admin/verify-otp", dto.VerifyOtpRequest{Email: "admin@peche.com", Otp: "000000"})

	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestSubscribeMapsDuplicateTo409(t *testing.T) {
	app := newTestApp(NewSubscriberController(&stubSubscriberService{subscribeErr: service.ErrAlreadySubscribed}).RegisterRoutes)

	status, envelope := postJSON(t, app, "/subscribe", dto.SubscribeRequest{Email: "reader@example.com"})

	assert.Equal(t, fiber.StatusConflict, status)
	assert.False(t, envelope.Success)
}

func TestSubscribeSuccess(t *testing.T) {
	app := newTestApp(NewSubscriberController(&stubSubscriberService{}).RegisterRoutes)

	status, envelope := postJSON(t, app, "/subscribe", dto.SubscribeRequest{Email: "reader@example.com"})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, envelope.Success)
}
