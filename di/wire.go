//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"hostline/config"
	"hostline/infras/mailer"
	"hostline/infras/otel"
	"hostline/infras/postgres"
	"hostline/infras/redis"
	"hostline/infras/telephony"
	"hostline/shared/cache"
	"hostline/transport/http"
	"hostline/transport/http/middleware"
	"hostline/transport/http/router"

	audioRepository "hostline/internal/domains/audio/repository"
	audioService "hostline/internal/domains/audio/service"
	availabilityRepository "hostline/internal/domains/availability/repository"
	availabilityService "hostline/internal/domains/availability/service"
	dialerRepository "hostline/internal/domains/dialer/repository"
	dialerService "hostline/internal/domains/dialer/service"
	hostRepository "hostline/internal/domains/host/repository"
	hostService "hostline/internal/domains/host/service"
	mealRepository "hostline/internal/domains/meal/repository"
	mealService "hostline/internal/domains/meal/service"
	menuRepository "hostline/internal/domains/menu/repository"
	menuService "hostline/internal/domains/menu/service"
	reportService "hostline/internal/domains/report/service"
	voicemailRepository "hostline/internal/domains/voicemail/repository"
	voicemailService "hostline/internal/domains/voicemail/service"
	weekRepository "hostline/internal/domains/week/repository"
	weekService "hostline/internal/domains/week/service"

	audioHandler "hostline/internal/handlers/audio"
	availabilityHandler "hostline/internal/handlers/availability"
	dialerHandler "hostline/internal/handlers/dialer"
	hostHandler "hostline/internal/handlers/host"
	mealHandler "hostline/internal/handlers/meal"
	menuHandler "hostline/internal/handlers/menu"
	registrationHandler "hostline/internal/handlers/registration"
	reportHandler "hostline/internal/handlers/report"
	voiceHandler "hostline/internal/handlers/voice"
	voicemailHandler "hostline/internal/handlers/voicemail"
	weekHandler "hostline/internal/handlers/week"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	telephony.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var weekDomain = wire.NewSet(
	weekRepository.New,
	weekService.New,
)

var hostDomain = wire.NewSet(
	hostRepository.New,
	hostService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var mealDomain = wire.NewSet(
	mealRepository.New,
	mealService.New,
)

var dialerDomain = wire.NewSet(
	dialerRepository.New,
	dialerService.New,
)

var voicemailDomain = wire.NewSet(
	voicemailRepository.New,
	voicemailService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var audioDomain = wire.NewSet(
	audioRepository.New,
	audioService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	weekDomain,
	hostDomain,
	availabilityDomain,
	mealDomain,
	dialerDomain,
	voicemailDomain,
	menuDomain,
	audioDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	voiceHandler.New,
	availabilityHandler.New,
	registrationHandler.New,
	mealHandler.New,
	voicemailHandler.New,
	dialerHandler.New,
	weekHandler.New,
	hostHandler.New,
	menuHandler.New,
	audioHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
