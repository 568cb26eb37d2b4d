package app

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"shiftbill/app/route/shifts"
)

func (a *App) RegisterRoutes() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	shifts.NewHandlerGroup(a.workbook, a.details).Mount(a.router)

	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("app/static/"))))
}
