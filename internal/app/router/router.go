package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ujwegh/gamemart/internal/app/handlers"
	middlware "github.com/ujwegh/gamemart/internal/app/middleware"
)

type Handlers struct {
	User     *handlers.UserHandler
	Orders   *handlers.OrdersHandler
	Balance  *handlers.BalanceHandler
	Webhooks *handlers.WebhookHandler
	Admin    *handlers.AdminHandler
}

func NewAppRouter(h Handlers, am middlware.AuthMiddleware, admin middlware.AdminMiddleware, ipFilter middlware.IPFilter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlware.RequestLogger)
	r.Use(middlware.ResponseLogger)
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(ipFilter.Filter)
		r.Post("/api/webhooks/payment", h.Webhooks.PaymentWebhook)
		r.Post("/api/webhooks/deployment", h.Webhooks.DeploymentWebhook)
	})

	r.Group(func(r chi.Router) {
		r.Use(am.Authenticate)
		r.Get("/api/user/me", h.User.Me)
		r.Post("/api/user/referrer", h.User.SetReferrer)
		r.Post("/api/user/checkout", h.Orders.Checkout)
		r.Post("/api/user/topup", h.Orders.TopUp)
		r.Get("/api/user/orders", h.Orders.GetOrders)
		r.Get("/api/user/orders/{number}", h.Orders.GetOrder)
		r.Get("/api/user/balance", h.Balance.GetBalance)
		r.Post("/api/user/withdraw", h.Balance.Withdraw)
		r.Get("/api/user/withdrawals", h.Balance.GetWithdrawals)
		r.Get("/api/user/transactions", h.Balance.GetTransactions)
	})

	r.Group(func(r chi.Router) {
		r.Use(admin.Authenticate)
		r.Post("/api/admin/orders/{number}/refund", h.Admin.Refund)
		r.Get("/api/admin/users/{id}/reconcile", h.Admin.Reconcile)
	})
	return r
}
