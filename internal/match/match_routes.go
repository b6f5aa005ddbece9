package match

import (
	mw "github.com/wbzhu/matchledger/internal/middleware"
	"github.com/wbzhu/matchledger/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterMatchRoutes wires the match CRUD endpoints. recalcFees is invoked
// after a cost-changing update; the fee package supplies it at wiring time.
func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string, recalcFees func(matchID uint) error) {
	matchRepo := NewMatchRepository(db)
	matchController := NewMatchController(matchRepo, recalcFees)

	publicMatches := router.Group("/matches")
	{
		publicMatches.GET("", matchController.GetAllMatches)
		publicMatches.GET("/:match_id", matchController.GetMatchByID)
	}

	authenticated := router.Group("/matches")
	authenticated.Use(mw.AuthMiddleware(jwtSecret))
	authenticated.Use(rmiddleware.TreasurerOrAdminMiddleware())
	{
		authenticated.POST("", matchController.CreateMatch)
		authenticated.PUT("/:match_id", matchController.UpdateMatch)
		authenticated.DELETE("/:match_id", matchController.DeleteMatch)
	}
}
