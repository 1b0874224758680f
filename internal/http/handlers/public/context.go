package public

import (
	"github.com/dingcan-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return shared.GetContextUint(c, "user_id")
}

func paramID(c *gin.Context) (uint, bool) {
	return shared.ParamUint(c, "id")
}
