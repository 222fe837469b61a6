package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the resource handlers mounted under /api.
type Handlers struct {
	Animals  *AnimalHandler
	Sections *SectionHandler
	Events   *EventHandler
	Comments *CommentHandler
	Users    *UserHandler
}

// Guard provides the authentication middlewares.
// *middleware.AuthMiddleware satisfies it.
type Guard interface {
	Authenticate(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}

// RegisterRoutes mounts every /api route on r. Section listings, registration
// and login are public; everything else needs a token, and writes to the
// catalogue need an admin.
func RegisterRoutes(r chi.Router, h Handlers, guard Guard) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/animales", func(r chi.Router) {
			r.Use(guard.Authenticate)
			r.Get("/", h.Animals.List)
			r.Get("/{id}", h.Animals.Get)
			r.Get("/nombre/{nombre}", h.Animals.GetByName)
			r.Get("/seccion/{id}", h.Animals.ListBySection)
			r.Get("/popular/semana", h.Animals.PopularWeek)
			r.Get("/popular/mes", h.Animals.PopularMonth)

			r.Group(func(r chi.Router) {
				r.Use(guard.RequireAdmin)
				r.Post("/alta", h.Animals.Create)
				r.Post("/imagen/{id}", h.Animals.UpdatePhoto)
				r.Put("/", h.Animals.Update)
				r.Patch("/modificar/imagen/{id}", h.Animals.UpdatePhoto)
				r.Delete("/{id}", h.Animals.Delete)
			})
		})

		r.Route("/secciones", func(r chi.Router) {
			r.Get("/", h.Sections.List)
			r.Get("/nombres", h.Sections.Names)

			r.Group(func(r chi.Router) {
				r.Use(guard.Authenticate)
				r.Get("/{id}", h.Sections.Get)

				r.Group(func(r chi.Router) {
					r.Use(guard.RequireAdmin)
					r.Post("/alta", h.Sections.Create)
					r.Post("/imagen/{id}", h.Sections.UpdatePhoto)
					r.Put("/modificar", h.Sections.Update)
					r.Patch("/modificar/imagen/{id}", h.Sections.UpdatePhoto)
					r.Delete("/{id}", h.Sections.Delete)
				})
			})
		})

		r.Route("/eventos", func(r chi.Router) {
			r.Use(guard.Authenticate)
			r.Get("/", h.Events.List)
			r.Get("/{id}", h.Events.Get)
			r.Get("/seccion/{id}", h.Events.ListBySection)

			r.Group(func(r chi.Router) {
				r.Use(guard.RequireAdmin)
				r.Post("/", h.Events.Create)
				r.Post("/imagen/{id}", h.Events.UpdatePhoto)
				r.Put("/", h.Events.Update)
				r.Patch("/modificar/imagen/{id}", h.Events.UpdatePhoto)
				r.Delete("/{id}", h.Events.Delete)
			})
		})

		r.Route("/comentarios", func(r chi.Router) {
			r.Use(guard.Authenticate)
			r.Get("/", h.Comments.List)
			r.Get("/{id}", h.Comments.Get)
			r.Get("/animal/{id}", h.Comments.ListByAnimal)
			r.Post("/", h.Comments.Create)
			r.Delete("/{id}", h.Comments.Delete)
		})

		r.Route("/usuarios", func(r chi.Router) {
			r.Post("/registro", h.Users.Register)
			r.Post("/login", h.Users.Login)

			r.Group(func(r chi.Router) {
				r.Use(guard.Authenticate)
				r.Put("/", h.Users.UpdateProfile)
				r.Patch("/actualizar/nombre/{id}", h.Users.UpdateName)
				r.Patch("/actualizar/email/{id}", h.Users.UpdateEmail)
				r.Patch("/actualizar/password/{id}", h.Users.UpdatePassword)
				r.Patch("/actualizar/imagen/{id}", h.Users.UpdatePhoto)
				r.Post("/imagen/{id}", h.Users.UpdatePhoto)
				r.Delete("/{id}", h.Users.Delete)

				r.Group(func(r chi.Router) {
					r.Use(guard.RequireAdmin)
					r.Get("/", h.Users.List)
					r.Get("/{id}", h.Users.Get)
					r.Patch("/rol/{id}", h.Users.SetRole)
				})
			})
		})
	})
}
