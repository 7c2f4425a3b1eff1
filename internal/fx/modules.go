package fx

import (
	"riftmates/internal/config"
	"riftmates/internal/database"
	"riftmates/internal/logger"
	"riftmates/internal/repository"
	"riftmates/internal/riot"
	"riftmates/internal/server"
	"riftmates/internal/service"

	"go.uber.org/fx"
)

func provideRiotAPI(client *riot.Client) service.RiotAPI { return client }

func provideMatchDetailCache(repo *repository.MatchCacheRepository) service.MatchDetailCache {
	return repo
}

func provideComparer(svc *service.CompareService) server.Comparer { return svc }

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewMatchCacheRepository),
	fx.Provide(provideMatchDetailCache),
	// api client
	fx.Provide(riot.NewClient),
	fx.Provide(provideRiotAPI),
	// svc
	fx.Provide(service.NewCompareService),
	fx.Provide(provideComparer),
	// server
	fx.Provide(server.NewCompareServer),
)
