package player

import (
	mw "github.com/wbzhu/matchledger/internal/middleware"
	"github.com/wbzhu/matchledger/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo)

	publicPlayers := router.Group("/players")
	{
		publicPlayers.GET("", playerController.GetAllPlayers)
		publicPlayers.GET("/:player_id", playerController.GetPlayerByID)
	}

	authenticated := router.Group("/players")
	authenticated.Use(mw.AuthMiddleware(jwtSecret))
	authenticated.Use(rmiddleware.AdminMiddleware())
	{
		authenticated.POST("", playerController.CreatePlayer)
		authenticated.PUT("/:player_id", playerController.UpdatePlayer)
		authenticated.DELETE("/:player_id", playerController.DeletePlayer)
	}
}
