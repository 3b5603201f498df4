package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/wanderplan/travel-planner-backend/internal/adjustment"
	"github.com/wanderplan/travel-planner-backend/internal/api"
	"github.com/wanderplan/travel-planner-backend/internal/booking"
	"github.com/wanderplan/travel-planner-backend/internal/inventory"
	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
	"github.com/wanderplan/travel-planner-backend/internal/poi"
	"github.com/wanderplan/travel-planner-backend/internal/share"
)

// Config holds the dependencies and settings required to start the
// application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	// DBPool selects the postgres backend for the catalog and share
	// store when set; nil selects the in-memory backend.
	DBPool *pgxpool.Pool

	ShareBaseURL        string
	ExportSigningSecret string
	ExportLinkTTL       time.Duration
	BcryptCost          int

	// AdjustmentRefreshInterval paces per-session adjustment refreshers;
	// zero gets the 5 minute default.
	AdjustmentRefreshInterval time.Duration

	// Random overrides the randomness source; nil gets a time-seeded one.
	Random random.Source
	// Logger defaults to a no-op logger when nil.
	Logger *zap.Logger
}

const defaultRefreshInterval = 5 * time.Minute

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine

	InventoryService  inventory.Service
	BookingService    booking.Service
	AdjustmentService adjustment.Service
	ShareService      share.Service

	refreshInterval time.Duration
	logger          *zap.Logger
}

// NewAdjustmentRefresher builds a refresher that regenerates adjustments
// for the destination and applies them to doc on the configured interval.
// One refresher is meant to run per active itinerary view session.
func (c *Container) NewAdjustmentRefresher(destination string, doc *itinerary.Document) *adjustment.Refresher {
	return adjustment.NewRefresher(c.refreshInterval, c.logger, func(ctx context.Context) error {
		adjustments, err := c.AdjustmentService.Generate(ctx, destination)
		if err != nil {
			return err
		}
		c.AdjustmentService.Apply(doc, adjustments)
		return nil
	})
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	rng := cfg.Random
	if rng == nil {
		rng = random.NewTimeSource()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Inventory module
	var invRepo inventory.Repository
	if cfg.DBPool != nil {
		invRepo = inventory.NewPgxRepository(cfg.DBPool)
	} else {
		invRepo = inventory.NewMemoryRepository(inventory.DefaultSeed())
	}
	invService := inventory.NewService(invRepo)

	// Booking module
	bookingService := booking.NewService(invService)

	// Itinerary generation (opaque external collaborator, mocked)
	generator := itinerary.NewMockGenerator(rng)

	// Adjustment module
	weatherProvider := adjustment.NewMockProvider(rng)
	adjService := adjustment.NewService(weatherProvider, rng)

	// Share module
	var shareRepo share.Repository
	if cfg.DBPool != nil {
		shareRepo = share.NewPgxRepository(cfg.DBPool)
	} else {
		shareRepo = share.NewMemoryRepository()
	}
	hasher := share.NewBcryptPasswordHasher(cfg.BcryptCost)
	exporter := share.NewExporter(cfg.ExportSigningSecret, cfg.ExportLinkTTL, logger)
	shareService := share.NewService(shareRepo, rng, hasher, exporter, cfg.ShareBaseURL)

	// POI module
	poiService := poi.NewService(poi.NewMockDiscoverer(rng))

	router := api.NewRouter(api.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		Generator:         generator,
		InventoryService:  invService,
		BookingService:    bookingService,
		AdjustmentService: adjService,
		ShareService:      shareService,
		POIService:        poiService,
	})

	refreshInterval := cfg.AdjustmentRefreshInterval
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}

	return &Container{
		Router:            router,
		InventoryService:  invService,
		BookingService:    bookingService,
		AdjustmentService: adjService,
		ShareService:      shareService,
		refreshInterval:   refreshInterval,
		logger:            logger,
	}
}
