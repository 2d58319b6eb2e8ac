package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/razasalaar/workshop-manager/internal/auth"
	"github.com/razasalaar/workshop-manager/internal/pkg/httpx"
	producthandler "github.com/razasalaar/workshop-manager/internal/product/handler"
	reporthandler "github.com/razasalaar/workshop-manager/internal/report/handler"
	salehandler "github.com/razasalaar/workshop-manager/internal/sale/handler"
	userhandler "github.com/razasalaar/workshop-manager/internal/user/handler"
	workshophandler "github.com/razasalaar/workshop-manager/internal/workshop/handler"
)

type Handlers struct {
	User     *userhandler.UserHandler
	Workshop *workshophandler.WorkshopHandler
	Product  *producthandler.ProductHandler
	Sale     *salehandler.SaleHandler
	Report   *reporthandler.ReportHandler
}

func NewRouter(h Handlers, tokens *auth.TokenManager) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.User.Register)
		r.Post("/login", h.User.Login)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(tokens.Middleware)

		r.Route("/workshops", func(r chi.Router) {
			r.Post("/", h.Workshop.Create)
			r.Get("/", h.Workshop.List)
			r.Put("/{id}", h.Workshop.Rename)
			r.Delete("/{id}", h.Workshop.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.Product.Create)
			r.Get("/", h.Product.List)
			r.Get("/{id}", h.Product.Get)
			r.Put("/{id}", h.Product.Update)
			r.Delete("/{id}", h.Product.Delete)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", h.Sale.Record)
			r.Get("/", h.Sale.List)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", h.Report.Dashboard)
			r.Get("/profit", h.Report.Profit)
			r.Get("/sales", h.Report.Sales)
		})
	})

	return r
}
