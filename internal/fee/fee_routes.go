package fee

import (
	mw "github.com/wbzhu/matchledger/internal/middleware"
	"github.com/wbzhu/matchledger/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
)

// RegisterFeeRoutes wires the fee breakdown and override endpoints. The
// services are built by the router so it can also hand the recalculation
// hook to the match routes.
func RegisterFeeRoutes(router *gin.RouterGroup, service *Service, overrides *OverrideService, jwtSecret string) {
	feeController := NewFeeController(service, overrides)

	public := router.Group("/matches/:match_id/fees")
	{
		public.GET("", feeController.GetMatchFees)
		public.GET("/players/:player_id", feeController.GetPlayerFees)
		public.GET("/overrides", feeController.GetOverrideReport)
		public.POST("/preview", feeController.PreviewFees)
	}

	authenticated := router.Group("/matches/:match_id/fees")
	authenticated.Use(mw.AuthMiddleware(jwtSecret))
	authenticated.Use(rmiddleware.TreasurerOrAdminMiddleware())
	{
		authenticated.POST("/recalculate", feeController.RecalculateFees)
		authenticated.PUT("/players/:player_id/override", feeController.ApplyOverride)
		authenticated.DELETE("/players/:player_id/override", feeController.RemoveOverride)
		authenticated.POST("/overrides/bulk", feeController.BulkApplyOverrides)
		authenticated.POST("/overrides/copy", feeController.CopyOverrides)
	}
}
