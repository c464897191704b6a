package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"cliphub/config"
	"cliphub/internal/delivery"
	delivhttp "cliphub/internal/delivery/http"
	"cliphub/internal/delivery/http/middleware"
	"cliphub/internal/delivery/http/router/handler"
	"cliphub/internal/domain/service"
	"cliphub/internal/infra/auth"
	"cliphub/internal/infra/flowstate"
	logs "cliphub/internal/infra/log"
	"cliphub/internal/infra/oauth"
	"cliphub/internal/infra/persistence/postgres"
	"cliphub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		oauth.NewHTTPClient,
		newFlowStore,
	)
}

// newFlowStore provides the in-memory flow store and stops its expiry
// sweeper on shutdown.
func newFlowStore(lc fx.Lifecycle) service.FlowStore {
	store := flowstate.NewMemoryStore()
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			store.Close()

			return nil
		},
	})

	return store
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSocialAccountRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newProviderRegistry,
		),
	)
}

// newProviderRegistry builds an adapter per configured platform. A platform
// left out of the config simply cannot be linked; a platform configured with
// missing fields fails startup here instead of failing mid-flow later.
func newProviderRegistry(cfg *config.Config, client *http.Client) (*service.ProviderRegistry, error) {
	var adapters []service.ProviderAdapter

	if cfg.OAuth.YouTube != nil {
		adapter, err := oauth.NewYouTubeAdapter(cfg, client)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}
	if cfg.OAuth.Instagram != nil {
		adapter, err := oauth.NewInstagramAdapter(cfg, client)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}
	if cfg.OAuth.TikTok != nil {
		adapter, err := oauth.NewTikTokAdapter(cfg, client)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}
	if cfg.OAuth.Twitter != nil {
		adapter, err := oauth.NewTwitterAdapter(cfg, client)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}
	if cfg.OAuth.Facebook != nil {
		adapter, err := oauth.NewFacebookAdapter(cfg, client)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}

	return service.NewProviderRegistry(adapters...), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenService,
			impl.NewLinkingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewConnectHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				delivhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
