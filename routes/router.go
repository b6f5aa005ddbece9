package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/wbzhu/matchledger/config"
	"github.com/wbzhu/matchledger/internal/attendance"
	"github.com/wbzhu/matchledger/internal/fee"
	"github.com/wbzhu/matchledger/internal/match"
	"github.com/wbzhu/matchledger/internal/player"
)

// SetupRoutes builds the engine and wires every route group. The fee
// service is constructed here so the match routes can recalculate fees
// after a cost change without the match package importing fee.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "matchledger",
			"status":  "ok",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rates := config.NewRateProviderFromConfig(cfg)
	feeRepo := fee.NewFeeRepository(db)
	feeService := fee.NewService(feeRepo, rates)
	overrideService := fee.NewOverrideService(feeRepo, feeService)

	attendanceRepo := attendance.NewAttendanceRepository(db)
	matchRepo := match.NewMatchRepository(db)
	attendanceService := attendance.NewService(attendanceRepo, matchRepo, feeService)

	recalcFees := func(matchID uint) error {
		_, err := feeService.RecalculateAllFees(matchID)
		return err
	}

	jwtSecret := cfg.JWT.AccessTokenSecret

	// API routes
	api := r.Group("/api")
	match.RegisterMatchRoutes(api, db, jwtSecret, recalcFees)
	player.RegisterPlayerRoutes(api, db, jwtSecret)
	attendance.RegisterAttendanceRoutes(api, attendanceService, jwtSecret)
	fee.RegisterFeeRoutes(api, feeService, overrideService, jwtSecret)

	return r
}
