package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ustva/internal/domain"
	"ustva/internal/service"
)

// ClientHandler handles client registry endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Register handles POST /clients
func (h *ClientHandler) Register(c *gin.Context) {
	var input service.RegisterClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if _, err := h.clientService.Register(c.Request.Context(), input); err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "client_created"})
}

// List handles GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

// Search handles GET /clients/search?q=
func (h *ClientHandler) Search(c *gin.Context) {
	refs, err := h.clientService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}
	if refs == nil {
		refs = []domain.ClientRef{}
	}
	c.JSON(http.StatusOK, refs)
}
