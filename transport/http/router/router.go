package router

import (
	"github.com/go-chi/chi/v5"

	"hostline/internal/handlers/audio"
	"hostline/internal/handlers/availability"
	"hostline/internal/handlers/dialer"
	"hostline/internal/handlers/host"
	"hostline/internal/handlers/meal"
	"hostline/internal/handlers/menu"
	"hostline/internal/handlers/registration"
	"hostline/internal/handlers/report"
	"hostline/internal/handlers/voice"
	"hostline/internal/handlers/voicemail"
	"hostline/internal/handlers/week"
	"hostline/transport/http/middleware"
)

type DomainHandlers struct {
	Voice        voice.Handler
	Availability availability.Handler
	Registration registration.Handler
	Meal         meal.Handler
	Voicemail    voicemail.Handler
	Dialer       dialer.Handler
	Week         week.Handler
	Host         host.Handler
	Menu         menu.Handler
	Audio        audio.Handler
	Report       report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

// SetupRoutes mounts two surfaces: the open /voice group the telephony
// provider posts webhooks to, and the key-protected /v1 group the
// coordinator UI talks to.
func (r *Router) SetupRoutes(router chi.Router, mw middleware.AppMiddleware) {
	router.Route("/voice", func(routerGroup chi.Router) {
		r.DomainHandlers.Voice.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Registration.Router(routerGroup)
		r.DomainHandlers.Meal.Router(routerGroup)
		r.DomainHandlers.Voicemail.Router(routerGroup)
		r.DomainHandlers.Dialer.Router(routerGroup)
	})

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(mw.APIKey)
		routerGroup.Use(mw.RateLimit)

		r.DomainHandlers.Week.AdminRouter(routerGroup)
		r.DomainHandlers.Host.AdminRouter(routerGroup)
		r.DomainHandlers.Menu.AdminRouter(routerGroup)
		r.DomainHandlers.Voicemail.AdminRouter(routerGroup)
		r.DomainHandlers.Dialer.AdminRouter(routerGroup)
		r.DomainHandlers.Audio.AdminRouter(routerGroup)
		r.DomainHandlers.Report.AdminRouter(routerGroup)
	})
}
