package internal

import (
	"hotprospects/internal/controllers"
	"hotprospects/internal/providers"
	"net/http"
)

func InitRoutes(prospectController *controllers.ProspectController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/prospects", http.HandlerFunc(prospectController.GetProspects))
	routers.Post("/scan", http.HandlerFunc(prospectController.Scan))
	routers.Post("/toggle", http.HandlerFunc(prospectController.Toggle))
	routers.Post("/remind", http.HandlerFunc(prospectController.Remind))
	routers.Get("/reminders", http.HandlerFunc(prospectController.GetReminders))
	return routers
}
