package routes

import (
	"github.com/gofiber/fiber/v2"

	"dentalflow-backend/controllers"
)

// Handlers bundles every controller the API exposes.
type Handlers struct {
	Auth         *controllers.AuthController
	Patients     *controllers.PatientController
	Dentists     *controllers.DentistController
	Appointments *controllers.AppointmentController
	Cases        *controllers.CaseController
	Invoices     *controllers.InvoiceController
	Inventory    *controllers.InventoryController
	Messages     *controllers.MessageController
	Reports      *controllers.ReportController
	Health       *controllers.HealthController
}

// Guards run in order in front of every protected route.
type Guards struct {
	Authenticate fiber.Handler
	Idempotency  fiber.Handler
	Transaction  fiber.Handler
}

// Register wires all HTTP routes.
func Register(app *fiber.App, h Handlers, g Guards) {
	if h.Health != nil {
		app.Get("/healthz", h.Health.Check)
	}

	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/auth/register", h.Auth.Register)
	api.Post("/auth/login", h.Auth.Login)

	protected := api.Group("")
	for _, guard := range []fiber.Handler{g.Authenticate, g.Idempotency, g.Transaction} {
		if guard != nil {
			protected.Use(guard)
		}
	}

	protected.Get("/auth/me", h.Auth.Me)

	// Patients
	protected.Get("/patients", h.Patients.List)
	protected.Post("/patients", h.Patients.Create)
	protected.Get("/patients/:id", h.Patients.Get)
	protected.Put("/patients/:id", h.Patients.Update)
	protected.Delete("/patients/:id", h.Patients.Delete)

	// Dentists
	protected.Get("/dentists", h.Dentists.List)
	protected.Post("/dentists", h.Dentists.Create)
	protected.Get("/dentists/:id", h.Dentists.Get)
	protected.Put("/dentists/:id", h.Dentists.Update)
	protected.Delete("/dentists/:id", h.Dentists.Delete)

	// Appointments (static segments before /:id)
	protected.Get("/appointments", h.Appointments.List)
	protected.Post("/appointments", h.Appointments.Create)
	protected.Get("/appointments/dentist/:dentistId/date-range", h.Appointments.ByDentistAndRange)
	protected.Get("/appointments/dentist/:dentistId/date/:date", h.Appointments.ByDentistAndDate)
	protected.Get("/appointments/dentist/:dentistId", h.Appointments.ByDentist)
	protected.Get("/appointments/patient/:patientId", h.Appointments.ByPatient)
	protected.Get("/appointments/case/:caseId", h.Appointments.ByCase)
	protected.Get("/appointments/date/:date", h.Appointments.ByDate)
	protected.Get("/appointments/:id", h.Appointments.Get)
	protected.Put("/appointments/:id", h.Appointments.Update)
	protected.Delete("/appointments/:id", h.Appointments.Delete)

	// Cases
	protected.Get("/cases", h.Cases.List)
	protected.Post("/cases", h.Cases.Create)
	protected.Get("/cases/dentist/:dentistId", h.Cases.ByDentist)
	protected.Get("/cases/:id", h.Cases.Get)
	protected.Put("/cases/:id", h.Cases.Update)
	protected.Put("/cases/:id/status", h.Cases.UpdateStatus)
	protected.Delete("/cases/:id", h.Cases.Delete)

	// Invoices
	protected.Get("/invoices", h.Invoices.List)
	protected.Post("/invoices", h.Invoices.Create)
	protected.Get("/invoices/:id", h.Invoices.Get)
	protected.Put("/invoices/:id", h.Invoices.Update)
	protected.Put("/invoices/:id/status", h.Invoices.UpdateStatus)
	protected.Delete("/invoices/:id", h.Invoices.Delete)

	// Inventory
	protected.Get("/inventory", h.Inventory.ListItems)
	protected.Post("/inventory", h.Inventory.CreateItem)
	protected.Get("/inventory/low-stock", h.Inventory.LowStock)
	protected.Get("/inventory/categories", h.Inventory.ListCategories)
	protected.Post("/inventory/categories", h.Inventory.CreateCategory)
	protected.Put("/inventory/categories/:id", h.Inventory.UpdateCategory)
	protected.Delete("/inventory/categories/:id", h.Inventory.DeleteCategory)
	protected.Get("/inventory/suppliers", h.Inventory.ListSuppliers)
	protected.Post("/inventory/suppliers", h.Inventory.CreateSupplier)
	protected.Put("/inventory/suppliers/:id", h.Inventory.UpdateSupplier)
	protected.Delete("/inventory/suppliers/:id", h.Inventory.DeleteSupplier)
	protected.Get("/inventory/:id", h.Inventory.GetItem)
	protected.Put("/inventory/:id", h.Inventory.UpdateItem)
	protected.Delete("/inventory/:id", h.Inventory.DeleteItem)

	// Messages
	protected.Get("/messages/contacts", h.Messages.Contacts)
	protected.Post("/messages/contacts", h.Messages.CreateContact)
	protected.Get("/messages/case/:caseId", h.Messages.ByCase)
	protected.Get("/messages/inbox", h.Messages.Inbox)
	protected.Post("/messages", h.Messages.Send)
	protected.Put("/messages/:id/read", h.Messages.MarkRead)

	// Reports
	protected.Get("/reports/financial", h.Reports.Financial)
	protected.Get("/reports/dentists", h.Reports.Dentists)
	protected.Get("/reports/cases", h.Reports.Cases)
}
