package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/pkg/serverutils"
	"peche-payments-be/internal/service"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	CreateOrder(ctx *fiber.Ctx) error
	VerifyPayment(ctx *fiber.Ctx) error
	PaymentFailed(ctx *fiber.Ctx) error
	GetPayments(ctx *fiber.Ctx) error
	GetPayment(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	r.Post("/create-order", c.CreateOrder)
	r.Post("/verify-payment", c.VerifyPayment)
	r.Post("/payment-failed", c.PaymentFailed)
	r.Get("/payments", c.GetPayments)
	r.Get("/payment/:id", c.GetPayment)
}

func (c *paymentController) CreateOrder(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateOrder(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Order created", res))
}

func (c *paymentController) VerifyPayment(ctx *fiber.Ctx) error {
	var req dto.VerifyPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.VerifyPayment(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSignatureMismatch) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, service.ErrPaymentPersist) {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Payment verified", res))
}

func (c *paymentController) PaymentFailed(ctx *fiber.Ctx) error {
	var req dto.PaymentFailedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.RecordFailure(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Payment failure recorded", nil))
}

func (c *paymentController) GetPayments(ctx *fiber.Ctx) error {
	res, err := c.service.GetPayments(ctx.Context(), ctx.QueryInt("limit", 0), ctx.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get payments", res))
}

func (c *paymentController) GetPayment(ctx *fiber.Ctx) error {
	res, err := c.service.GetPaymentByID(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get payment", res))
}
