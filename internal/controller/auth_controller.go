package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/pkg/serverutils"
	"peche-payments-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	VerifyOtp(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Post("/login", c.Login)
	h.Post("/verify-otp", c.VerifyOtp)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Login(ctx.Context(), &req); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		if errors.Is(err, service.ErrOtpDispatchFailed) {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("OTP sent to admin email", nil))
}

func (c *authController) VerifyOtp(ctx *fiber.Ctx) error {
	var req dto.VerifyOtpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.VerifyOtp(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrExpiredOtp) {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Admin session created", res))
}
