package routes

import (
	"time"

	"github.com/atlasfit/gym-backend/internal/authz"
	"github.com/atlasfit/gym-backend/internal/config"
	"github.com/atlasfit/gym-backend/internal/handlers"
	"github.com/atlasfit/gym-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Branch       *handlers.BranchHandler
	User         *handlers.UserHandler
	Class        *handlers.ClassHandler
	Schedule     *handlers.ScheduleHandler
	Reservation  *handlers.ReservationHandler
	Subscription *handlers.SubscriptionHandler
	Product      *handlers.ProductHandler
	Membership   *handlers.MembershipHandler
	Payment      *handlers.PaymentHandler
	Webhook      *handlers.WebhookHandler
}

func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Gateway callbacks authenticate via signature, not JWT.
	api.Post("/webhooks/midtrans", h.Webhook.PaymentNotification)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	jwt := middleware.JWTProtected(cfg)
	can := func(r authz.Resource, a authz.Action) fiber.Handler {
		return middleware.Authorize(r, a)
	}

	api.Post("/auth/logout", jwt, h.Auth.Logout)
	api.Get("/auth/me", jwt, h.Auth.Me)
	api.Post("/auth/change-password", jwt, h.Auth.ChangePassword)

	// Branches
	branches := api.Group("/branches", jwt)
	branches.Get("/", can(authz.ResourceBranch, authz.ActionRead), h.Branch.List)
	branches.Get("/:id", can(authz.ResourceBranch, authz.ActionRead), h.Branch.Get)
	branches.Post("/", can(authz.ResourceBranch, authz.ActionCreate), h.Branch.Create)
	branches.Put("/:id", can(authz.ResourceBranch, authz.ActionUpdate), h.Branch.Update)
	branches.Delete("/:id", can(authz.ResourceBranch, authz.ActionDelete), h.Branch.Delete)

	// Users
	users := api.Group("/users", jwt)
	users.Get("/", can(authz.ResourceUser, authz.ActionRead), h.User.List)
	users.Get("/:id", can(authz.ResourceUser, authz.ActionRead), h.User.Get)
	users.Post("/", can(authz.ResourceUser, authz.ActionCreate), h.User.Create)
	users.Put("/:id", can(authz.ResourceUser, authz.ActionUpdate), h.User.Update)
	users.Delete("/:id", can(authz.ResourceUser, authz.ActionDelete), h.User.Deactivate)
	users.Get("/:id/reservations", can(authz.ResourceReservation, authz.ActionRead), h.Reservation.ListByUser)
	users.Get("/:id/memberships", can(authz.ResourceMembership, authz.ActionRead), h.Membership.ListByUser)
	users.Get("/:id/payments", can(authz.ResourcePayment, authz.ActionRead), h.Payment.ListByUser)

	// Classes and schedules
	classes := api.Group("/classes", jwt)
	classes.Get("/", can(authz.ResourceClass, authz.ActionRead), h.Class.List)
	classes.Get("/:id", can(authz.ResourceClass, authz.ActionRead), h.Class.Get)
	classes.Post("/", can(authz.ResourceClass, authz.ActionCreate), h.Class.Create)
	classes.Put("/:id", can(authz.ResourceClass, authz.ActionUpdate), h.Class.Update)
	classes.Delete("/:id", can(authz.ResourceClass, authz.ActionDelete), h.Class.Delete)
	classes.Get("/:id/schedules", can(authz.ResourceSchedule, authz.ActionRead), h.Schedule.ListByClass)
	classes.Get("/:id/subscriptions", can(authz.ResourceSubscription, authz.ActionRead), h.Subscription.ListByClass)

	schedules := api.Group("/schedules", jwt)
	schedules.Get("/:id", can(authz.ResourceSchedule, authz.ActionRead), h.Schedule.Get)
	schedules.Post("/", can(authz.ResourceSchedule, authz.ActionCreate), h.Schedule.Create)
	schedules.Put("/:id", can(authz.ResourceSchedule, authz.ActionUpdate), h.Schedule.Update)
	schedules.Delete("/:id", can(authz.ResourceSchedule, authz.ActionDelete), h.Schedule.Deactivate)
	schedules.Get("/:id/available-spots", can(authz.ResourceSchedule, authz.ActionRead), h.Schedule.AvailableSpots)
	schedules.Get("/:id/reservations", can(authz.ResourceReservation, authz.ActionRead), h.Reservation.ListBySchedule)

	// Reservations
	reservations := api.Group("/reservations", jwt)
	reservations.Post("/", can(authz.ResourceReservation, authz.ActionCreate), h.Reservation.Create)
	reservations.Get("/me", h.Reservation.ListMine)
	reservations.Get("/:id", can(authz.ResourceReservation, authz.ActionRead), h.Reservation.Get)
	reservations.Post("/:id/cancel", can(authz.ResourceReservation, authz.ActionManage), h.Reservation.Cancel)
	reservations.Post("/:id/attended", can(authz.ResourceReservation, authz.ActionMark), h.Reservation.MarkAttended)
	reservations.Post("/:id/no-show", can(authz.ResourceReservation, authz.ActionMark), h.Reservation.MarkNoShow)
	reservations.Delete("/:id", can(authz.ResourceReservation, authz.ActionDelete), h.Reservation.Delete)

	// Recurring class subscriptions
	subscriptions := api.Group("/subscriptions", jwt)
	subscriptions.Post("/", can(authz.ResourceSubscription, authz.ActionCreate), h.Subscription.Create)
	subscriptions.Get("/me", h.Subscription.ListMine)
	subscriptions.Delete("/:id", can(authz.ResourceSubscription, authz.ActionManage), h.Subscription.Deactivate)

	// Products
	products := api.Group("/products", jwt)
	products.Get("/", can(authz.ResourceProduct, authz.ActionRead), h.Product.List)
	products.Get("/:id", can(authz.ResourceProduct, authz.ActionRead), h.Product.Get)
	products.Post("/", can(authz.ResourceProduct, authz.ActionCreate), h.Product.Create)
	products.Put("/:id", can(authz.ResourceProduct, authz.ActionUpdate), h.Product.Update)
	products.Delete("/:id", can(authz.ResourceProduct, authz.ActionDelete), h.Product.Deactivate)

	// Memberships
	memberships := api.Group("/memberships", jwt)
	memberships.Post("/", can(authz.ResourceMembership, authz.ActionCreate), h.Membership.Assign)
	memberships.Get("/me", h.Membership.ListMine)
	memberships.Get("/:id", can(authz.ResourceMembership, authz.ActionRead), h.Membership.Get)
	memberships.Post("/:id/extend", can(authz.ResourceMembership, authz.ActionManage), h.Membership.Extend)
	memberships.Post("/:id/activate", can(authz.ResourceMembership, authz.ActionManage), h.Membership.Activate)
	memberships.Post("/:id/cancel", can(authz.ResourceMembership, authz.ActionManage), h.Membership.Cancel)
	memberships.Post("/:id/suspend", can(authz.ResourceMembership, authz.ActionManage), h.Membership.Suspend)
	memberships.Post("/:id/expire", can(authz.ResourceMembership, authz.ActionManage), h.Membership.Expire)
	memberships.Post("/:id/payments", can(authz.ResourcePayment, authz.ActionCreate), h.Membership.AddPayment)

	// Payments
	payments := api.Group("/payments", jwt)
	payments.Post("/", can(authz.ResourcePayment, authz.ActionCreate), h.Payment.Create)
	payments.Get("/me", h.Payment.ListMine)
	payments.Get("/:id", can(authz.ResourcePayment, authz.ActionRead), h.Payment.Get)
	payments.Post("/:id/complete", can(authz.ResourcePayment, authz.ActionManage), h.Payment.MarkCompleted)
	payments.Post("/:id/fail", can(authz.ResourcePayment, authz.ActionManage), h.Payment.MarkFailed)
	payments.Post("/:id/cancel", can(authz.ResourcePayment, authz.ActionManage), h.Payment.Cancel)
	payments.Post("/:id/refund", can(authz.ResourcePayment, authz.ActionManage), h.Payment.Refund)
}
