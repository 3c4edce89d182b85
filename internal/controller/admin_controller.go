package controller

import (
	"github.com/gofiber/fiber/v2"

	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/pkg/serverutils"
	"peche-payments-be/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetPayments(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
	GetSubscriptions(ctx *fiber.Ctx) error
	GetAnalytics(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService      service.IAdminService
	subscriberService service.ISubscriberService
	analyticsService  service.IAnalyticsService
}

func NewAdminController(
	adminService service.IAdminService,
	subscriberService service.ISubscriberService,
	analyticsService service.IAnalyticsService,
) IAdminController {
	return &adminController{
		adminService:      adminService,
		subscriberService: subscriberService,
		analyticsService:  analyticsService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.AdminJwtMiddleware)
	h.Get("/payments", c.GetPayments)
	h.Get("/stats", c.GetStats)
	h.Get("/subscriptions", c.GetSubscriptions)
	h.Get("/analytics", c.GetAnalytics)
}

func (c *adminController) GetPayments(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetPayments(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get payments", res))
}

func (c *adminController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get payment stats", res))
}

func (c *adminController) GetSubscriptions(ctx *fiber.Ctx) error {
	res, err := c.subscriberService.GetSubscribers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subscriptions", res))
}

// GetAnalytics always answers 200. When credentials are missing the
// demo snapshot is returned with setup_required set so the dashboard
// can surface a banner instead of an error page.
func (c *adminController) GetAnalytics(ctx *fiber.Ctx) error {
	res := &dto.AnalyticsResponse{
		Snapshot:      c.analyticsService.GetSnapshot(ctx.Context()),
		SetupRequired: !c.analyticsService.IsConfigured(),
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get analytics", res))
}
