package admin

import (
	handlershared "github.com/dingcan-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "admin_id")
}

func paramID(c *gin.Context) (uint, bool) {
	return handlershared.ParamUint(c, "id")
}
