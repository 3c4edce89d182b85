package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/pkg/serverutils"
	"peche-payments-be/internal/service"
)

type ISubscriberController interface {
	RegisterRoutes(r fiber.Router)
	Subscribe(ctx *fiber.Ctx) error
}

type subscriberController struct {
	service service.ISubscriberService
}

func NewSubscriberController(service service.ISubscriberService) ISubscriberController {
	return &subscriberController{service: service}
}

func (c *subscriberController) RegisterRoutes(r fiber.Router) {
	r.Post("/subscribe", c.Subscribe)
}

func (c *subscriberController) Subscribe(ctx *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Subscribe(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscribed successfully", res))
}
