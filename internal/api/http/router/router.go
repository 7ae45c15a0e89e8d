package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/thevanityindia/vanity-server/internal/api/http/handler"
	"github.com/thevanityindia/vanity-server/internal/api/http/middleware"
)

// Handlers groups the endpoint handlers mounted by New.
type Handlers struct {
	Auth     *handler.Auth
	Product  *handler.Product
	Cart     *handler.Cart
	Wishlist *handler.Wishlist
	User     *handler.User
	Order    *handler.Order
	Payment  *handler.Payment
	Health   *handler.Health
}

// New assembles the HTTP routing table. Catalog reads and sign-in are
// public; everything else requires a bearer token, and catalog writes
// additionally require the admin role.
func New(h Handlers, authenticate *middleware.Authenticate, logging *middleware.Logging, origins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(logging.Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health.Check)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/send-otp", h.Auth.SendOTP)
			r.Post("/verify-otp", h.Auth.VerifyOTP)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.List)
			r.Get("/{id}", h.Product.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticate.Handler)
				r.Use(authenticate.RequireAdmin)
				r.Post("/", h.Product.Create)
				r.Delete("/{id}", h.Product.Delete)
				r.Post("/{id}/image", h.Product.UploadImage)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate.Handler)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.Cart.Get)
				r.Post("/", h.Cart.Add)
				r.Put("/{lineId}", h.Cart.Update)
				r.Delete("/{lineId}", h.Cart.Remove)
				r.Delete("/", h.Cart.Clear)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", h.Wishlist.Get)
				r.Post("/", h.Wishlist.Add)
				r.Delete("/{productId}", h.Wishlist.Remove)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", h.User.GetProfile)
				r.Put("/profile", h.User.UpdateProfile)
				r.Get("/addresses", h.User.ListAddresses)
				r.Post("/addresses", h.User.AddAddress)
				r.Delete("/addresses/{id}", h.User.RemoveAddress)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.Order.Place)
				r.Get("/my-orders", h.Order.ListMine)
				r.Get("/delivery-estimate", h.Order.EstimateDelivery)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/create-order", h.Payment.CreateOrder)
				r.Post("/verify", h.Payment.Verify)
			})
		})
	})

	return r
}
