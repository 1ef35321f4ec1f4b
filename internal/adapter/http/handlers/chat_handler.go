package handlers

import (
	"net/http"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	response "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/response"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// Chat godoc
// @Summary      Ask the assistant
// @Description  Always answers 200. A blank or unreadable message gets the default prompt.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      request.ChatRequest  true  "Visitor message"
// @Success      200      {object}  response.ChatResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	// An unreadable body is answered like an empty message.
	_ = c.ShouldBindJSON(&payload)

	c.JSON(http.StatusOK, response.ChatResponse{Response: h.usecase.Respond(c.Request.Context(), payload.Message)})
}
