package api

import "Postcraft/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PageHandler     *handler.PageHandler
	BookingHandler  *handler.BookingHandler
	GenerateHandler *handler.GenerateHandler
	PostHandler     *handler.PostHandler
}
