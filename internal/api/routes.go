package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	api.Post("/register", handler.Register)
	api.Post("/login", handler.Login)
	api.Post("/logout", handler.Logout)
	api.Get("/user", handler.RequireAuthenticated, handler.CurrentUser)

	api.Get("/profile", handler.RequireAuthenticated, handler.GetProfile)
	api.Put("/profile", handler.RequireAuthenticated, handler.UpdateProfile)

	abstracts := api.Group("/abstracts", handler.RequireAuthenticated)
	abstracts.Get("", handler.ListMyAbstracts)
	abstracts.Post("", handler.SubmitAbstract)
	abstracts.Get("/:id", handler.GetAbstract)
	abstracts.Put("/:id", handler.UpdateAbstract)
	abstracts.Delete("/:id", handler.DeleteAbstract)

	// Public reference data.
	api.Get("/notifications", handler.PublicNotifications)
	api.Get("/committee", handler.PublicCommittee)
	api.Get("/committee/:category", handler.PublicCommittee)
	api.Get("/awards", handler.PublicAwards)
	api.Get("/brochure", handler.DownloadBrochure)

	// Invitation resolution is bearer-token only: no session required.
	invitations := api.Group("/invitations")
	invitations.Get("/verify", handler.VerifyInvitation)
	invitations.Post("/attendance-response", handler.AttendanceResponse)
	invitations.Get("", handler.RequireAuthenticated, handler.RequireAdmin, handler.ListInvitations)
	invitations.Post("", handler.RequireAuthenticated, handler.RequireAdmin, handler.CreateInvitation)
	invitations.Get("/:token", handler.GetInvitation)
	invitations.Put("/:token/status", handler.ResolveInvitation)

	admin := api.Group("/admin", handler.RequireAuthenticated, handler.RequireAdmin)
	admin.Get("/abstracts", handler.ListAllAbstracts)
	admin.Put("/abstracts/:id/status", handler.SetAbstractStatus)

	admin.Get("/notifications", handler.ListNotifications)
	admin.Post("/notifications", handler.CreateNotification)
	admin.Put("/notifications/:id", handler.UpdateNotification)
	admin.Delete("/notifications/:id", handler.DeleteNotification)

	admin.Get("/committee", handler.ListCommittee)
	admin.Post("/committee", handler.CreateCommitteeMember)
	admin.Put("/committee/:id", handler.UpdateCommitteeMember)
	admin.Delete("/committee/:id", handler.DeleteCommitteeMember)

	admin.Get("/awards", handler.ListAwards)
	admin.Post("/awards", handler.CreateAward)
	admin.Put("/awards/:id", handler.UpdateAward)
	admin.Delete("/awards/:id", handler.DeleteAward)

	admin.Get("/users", handler.ListUsers)
	admin.Put("/users/:id/role", handler.UpdateUserRole)

	admin.Post("/brochure", handler.ReplaceBrochure)
}
