package httpserver

import (
	"net/http"
	"time"

	"garments-api/internal/config"
	"garments-api/internal/transport/httpserver/handler"
	"garments-api/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts every route on a chi router. metrics may be nil.
func NewRouter(cfg config.Config, handlers *handler.Handlers, metrics *middleware.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORSOrigins))
	if metrics != nil {
		r.Use(metrics.Middleware)
		r.Method(http.MethodGet, cfg.Metrics.Path, metrics.Handler())
	}

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login/super_admin", handlers.LoginSuperAdmin)
			r.Post("/login/org_admin", handlers.LoginOrgAdmin)
			r.Post("/login/individual", handlers.LoginIndividual)
			r.Post("/reset_password", handlers.ResetPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/super_admin", handlers.CreateSuperAdmin)
			r.Get("/super_admin/all", handlers.ListSuperAdmins)
			r.Get("/super_admin/{id}", handlers.GetSuperAdmin)
			r.Put("/super_admin/{id}", handlers.UpdateSuperAdmin)
			r.Delete("/super_admin/{id}", handlers.DeleteSuperAdmin)

			r.Post("/organization", handlers.CreateOrganization)
			r.Get("/organization/all", handlers.ListOrganizations)
			r.Get("/organization/{id}", handlers.GetOrganization)
			r.Put("/organization/{id}", handlers.UpdateOrganization)
			r.Delete("/organization/{id}", handlers.DeleteOrganization)

			r.Post("/org_admin", handlers.CreateOrgAdmin)
			r.Get("/org_admin/all", handlers.ListOrgAdmins)
			r.Get("/org_admin/by_org/{org_id}", handlers.ListOrgAdminsByOrg)
			r.Get("/org_admin/{id}", handlers.GetOrgAdmin)
			r.Put("/org_admin/{id}", handlers.UpdateOrgAdmin)
			r.Delete("/org_admin/{id}", handlers.DeleteOrgAdmin)

			r.Post("/org_user", handlers.CreateOrgUser)
			r.Get("/org_user/all", handlers.ListOrgUsers)
			r.Get("/org_user/by_org/{org_id}", handlers.ListOrgUsersByOrg)
			r.Get("/org_user/{id}", handlers.GetOrgUser)
			r.Put("/org_user/{id}", handlers.UpdateOrgUser)
			r.Delete("/org_user/{id}", handlers.DeleteOrgUser)

			r.Post("/individual", handlers.CreateIndividual)
			r.Get("/individual/all", handlers.ListIndividuals)
			r.Get("/individual/{id}", handlers.GetIndividual)
			r.Put("/individual/{id}", handlers.UpdateIndividual)
			r.Delete("/individual/{id}", handlers.DeleteIndividual)

			r.Get("/resolve/{user_type}/{id}", handlers.ResolveUser)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/categories", handlers.ListCategories)
			r.Post("/category", handlers.CreateCategory)
			r.Get("/category/{id}", handlers.ListCategoryProducts)
			r.Put("/category/{id}", handlers.UpdateCategory)
			r.Delete("/category/{id}", handlers.DeleteCategory)

			r.Get("/", handlers.ListProducts)
			r.Post("/", handlers.CreateProduct)
			r.Get("/{id}", handlers.GetProduct)
			r.Put("/{id}", handlers.UpdateProduct)
			r.Delete("/{id}", handlers.DeleteProduct)
		})

		r.Route("/measurements", func(r chi.Router) {
			r.Get("/types", handlers.ListMeasurementTypes)
			r.Post("/type", handlers.CreateMeasurementType)
			r.Get("/type/{id}", handlers.GetMeasurementType)
			r.Get("/type/{id}/sections", handlers.ListTypeSections)
			r.Post("/type/{id}/section", handlers.CreateSection)
			r.Post("/section/{id}/field", handlers.CreateField)

			r.Get("/all", handlers.ListAllMeasurements)
			r.Post("/", handlers.CreateMeasurement)
			r.Get("/{id}/org_measurements", handlers.ListOrgMeasurements)
			r.Get("/{id}/{user_type}", handlers.ListUserMeasurements)
			r.Get("/{id}", handlers.GetMeasurement)
			r.Put("/{id}", handlers.UpdateMeasurement)
			r.Delete("/{id}", handlers.DeleteMeasurement)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/create", handlers.CreateOrder)
		r.Get("/details/{id}", handlers.GetOrder)
		r.Post("/update_status", handlers.UpdateOrderStatus)
		r.Get("/all", handlers.ListOrders)
		r.Get("/by_user/{user_id}/{user_type}", handlers.ListUserOrders)
	})

	return r
}
