package public

import "github.com/dingcan-next/internal/provider"

// Handler 客户端处理器集合
type Handler struct {
	*provider.Container
}

// New 创建客户端处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
