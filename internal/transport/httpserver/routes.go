package httpserver

import (
	"net/http"
	"time"

	"wedding-planner-go/internal/transport/httpserver/handler"
	authmw "wedding-planner-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(allowedOrigins []string, handlers *handler.Handlers, auth *authmw.SessionAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(allowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/register", handlers.Register)
		r.Post("/auth/login", handlers.Login)
		r.Post("/auth/logout", handlers.Logout)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Post("/events", handlers.CreateEvent)
			r.Get("/events/me", handlers.GetEvent)
			r.Put("/events/me", handlers.UpdateEvent)

			r.Get("/dashboard", handlers.Dashboard)
			r.Get("/countdown", handlers.Countdown)

			r.Get("/tasks", handlers.ListTasks)
			r.Post("/tasks", handlers.CreateTask)
			r.Put("/tasks/{id}", handlers.UpdateTask)
			r.Patch("/tasks/{id}/completed", handlers.SetTaskCompleted)
			r.Delete("/tasks/{id}", handlers.DeleteTask)

			r.Get("/expenses", handlers.ListExpenses)
			r.Post("/expenses", handlers.CreateExpense)
			r.Put("/expenses/{id}", handlers.UpdateExpense)
			r.Delete("/expenses/{id}", handlers.DeleteExpense)

			r.Get("/deposits", handlers.ListDeposits)
			r.Post("/deposits", handlers.CreateDeposit)
			r.Put("/deposits/{id}", handlers.UpdateDeposit)
			r.Delete("/deposits/{id}", handlers.DeleteDeposit)

			r.Get("/budgets", handlers.ListBudgets)
			r.Put("/budgets", handlers.UpsertBudget)
			r.Delete("/budgets/{id}", handlers.DeleteBudget)

			r.Get("/finance/summary", handlers.FinanceSummary)

			r.Get("/guests", handlers.ListGuests)
			r.Post("/guests", handlers.CreateGuest)
			r.Put("/guests/{id}", handlers.UpdateGuest)
			r.Delete("/guests/{id}", handlers.DeleteGuest)
			r.Get("/guests/families", handlers.GuestFamilies)

			r.Get("/registry", handlers.ListRegistryItems)
			r.Post("/registry", handlers.CreateRegistryItem)
			r.Put("/registry/{id}", handlers.UpdateRegistryItem)
			r.Patch("/registry/{id}/status", handlers.SetRegistryItemStatus)
			r.Delete("/registry/{id}", handlers.DeleteRegistryItem)

			r.Get("/suppliers", handlers.ListSuppliers)
			r.Post("/suppliers", handlers.CreateSupplier)
			r.Put("/suppliers/{id}", handlers.UpdateSupplier)
			r.Delete("/suppliers/{id}", handlers.DeleteSupplier)

			r.Get("/locations", handlers.ListLocations)
			r.Put("/locations", handlers.UpsertLocation)
			r.Delete("/locations/{id}", handlers.DeleteLocation)

			r.Get("/documents", handlers.ListDocuments)
			r.Post("/documents", handlers.CreateDocument)
			r.Put("/documents/{id}", handlers.UpdateDocument)
			r.Delete("/documents/{id}", handlers.DeleteDocument)

			r.Get("/notes", handlers.ListNotes)
			r.Post("/notes", handlers.CreateNote)
			r.Put("/notes/{id}", handlers.UpdateNote)
			r.Delete("/notes/{id}", handlers.DeleteNote)
		})
	})

	return r
}
