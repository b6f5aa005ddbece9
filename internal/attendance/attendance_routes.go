package attendance

import (
	mw "github.com/wbzhu/matchledger/internal/middleware"
	"github.com/wbzhu/matchledger/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
)

// RegisterAttendanceRoutes wires the attendance endpoints. The service is
// built by the router because it shares the fee service with other routes.
func RegisterAttendanceRoutes(router *gin.RouterGroup, service *Service, jwtSecret string) {
	attendanceController := NewAttendanceController(service)

	public := router.Group("/matches/:match_id/attendance")
	{
		public.GET("", attendanceController.GetAttendance)
		public.POST("/validate", attendanceController.ValidateAttendance)
	}

	authenticated := router.Group("/matches/:match_id/attendance")
	authenticated.Use(mw.AuthMiddleware(jwtSecret))
	authenticated.Use(rmiddleware.TreasurerOrAdminMiddleware())
	{
		authenticated.PUT("", attendanceController.SaveAttendance)
	}
}
