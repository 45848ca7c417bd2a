package app

import (
	"context"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/mydreamteam/fantasy-engine/internal/config"
	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
	"github.com/mydreamteam/fantasy-engine/internal/infrastructure/repository/memory"
	"github.com/mydreamteam/fantasy-engine/internal/infrastructure/repository/postgres"
	"github.com/mydreamteam/fantasy-engine/internal/interfaces/httpapi"
	"github.com/mydreamteam/fantasy-engine/internal/platform/cache"
	idgen "github.com/mydreamteam/fantasy-engine/internal/platform/id"
	"github.com/mydreamteam/fantasy-engine/internal/platform/logging"
	"github.com/mydreamteam/fantasy-engine/internal/usecase"
)

// App bundles the wired HTTP server and the background auction
// sweeper. DB is nil when running on the in-memory repositories.
type App struct {
	Server  *http.Server
	Sweeper *usecase.AuctionSweeper
	DB      *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		db          *sqlx.DB
		squadRepo   squad.Repository
		auctionRepo auction.Repository
		playerRepo  player.Repository
	)
	if cfg.DBURL != "" {
		var err error
		db, err = connectDB(cfg, logger)
		if err != nil {
			return nil, crerr.Wrap(err, "connect database")
		}
		if err := postgres.BootstrapSeed(context.Background(), db); err != nil {
			_ = db.Close()
			return nil, crerr.Wrap(err, "bootstrap seed")
		}
		squadRepo = postgres.NewSquadRepository(db)
		auctionRepo = postgres.NewAuctionRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		logger.Info("storage configured", "driver", "postgres")
	} else {
		squadRepo = memory.NewSquadRepository()
		auctionRepo = memory.NewAuctionRepository(memory.SeedAuctions(time.Now().UTC()))
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
		logger.Info("storage configured", "driver", "memory")
	}

	var historyCache *cache.Store
	if cfg.CacheEnabled {
		historyCache = cache.NewStore(cfg.CacheTTL)
	}

	generator := idgen.NewRandomGenerator()
	squadSvc := usecase.NewSquadService(squadRepo, squad.DefaultRules(), generator, logger)
	auctionSvc := usecase.NewAuctionService(auctionRepo, playerRepo, generator, logger, historyCache)
	playerSvc := usecase.NewPlayerService(playerRepo, logger)

	var sweeper *usecase.AuctionSweeper
	if cfg.SweeperEnabled {
		sweeper = usecase.NewAuctionSweeper(auctionSvc, auctionRepo, logger, cfg.SweepInterval, cfg.SweepWorkers)
	}

	handler := httpapi.NewHandler(squadSvc, auctionSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, crerr.New("http server addr cannot be empty")
	}

	return &App{
		Server:  server,
		Sweeper: sweeper,
		DB:      db,
	}, nil
}

// Close releases resources owned by the app. The HTTP server is shut
// down by the caller before Close.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}

	return nil
}
