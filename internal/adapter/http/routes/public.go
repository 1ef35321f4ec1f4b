package routes

import "github.com/gin-gonic/gin"

func addPublicRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", h.Public.Home)
	router.GET("/services", h.Public.Services)
	router.GET("/about", h.Public.About)
	router.GET("/contact", h.Public.Contact)
	router.GET("/quote", h.Public.QuoteForm)
	router.POST("/quote-submit", h.Public.SubmitQuote)
	router.GET("/quote-result", h.Public.QuoteResult)
	router.GET("/logout", h.Auth.Logout)

	api := router.Group("/api")
	{
		api.POST("/chat", h.Chat.Chat)
		api.POST("/quote/estimate", h.Estimate.Estimate)
	}
}
