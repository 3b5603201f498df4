package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wanderplan/travel-planner-backend/internal/adjustment"
	adjHttp "github.com/wanderplan/travel-planner-backend/internal/adjustment/http"
	"github.com/wanderplan/travel-planner-backend/internal/booking"
	bookingHttp "github.com/wanderplan/travel-planner-backend/internal/booking/http"
	"github.com/wanderplan/travel-planner-backend/internal/inventory"
	invHttp "github.com/wanderplan/travel-planner-backend/internal/inventory/http"
	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
	itinHttp "github.com/wanderplan/travel-planner-backend/internal/itinerary/http"
	"github.com/wanderplan/travel-planner-backend/internal/poi"
	poiHttp "github.com/wanderplan/travel-planner-backend/internal/poi/http"
	"github.com/wanderplan/travel-planner-backend/internal/share"
	shareHttp "github.com/wanderplan/travel-planner-backend/internal/share/http"
)

// Config holds the services the router exposes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	Generator         itinerary.Generator
	InventoryService  inventory.Service
	BookingService    booking.Service
	AdjustmentService adjustment.Service
	ShareService      share.Service
	POIService        poi.Service
}

// NewRouter initializes the HTTP router engine: middleware (CORS, Logger,
// Recovery) and the /v1 route registrations for every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Web frontend
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Share-Password"}
	r.Use(cors.New(corsConfig))

	itinHandler := itinHttp.NewHandler(cfg.Generator)
	invHandler := invHttp.NewHandler(cfg.InventoryService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	adjHandler := adjHttp.NewHandler(cfg.AdjustmentService)
	shareHandler := shareHttp.NewHandler(cfg.ShareService)
	poiHandler := poiHttp.NewHandler(cfg.POIService)

	v1 := r.Group("/v1")
	{
		itinHttp.RegisterRoutes(v1, itinHandler)
		invHttp.RegisterRoutes(v1, invHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		adjHttp.RegisterRoutes(v1, adjHandler)
		shareHttp.RegisterRoutes(v1, shareHandler)
		poiHttp.RegisterRoutes(v1, poiHandler)
	}

	return r
}
