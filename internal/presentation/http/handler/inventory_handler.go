package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nilkanthplet/BP-1.0/internal/application/service"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/dto/request"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/dto/response"
)

// InventoryHandler handles inventory register HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Get returns the inventory register
func (h *InventoryHandler) Get(c *gin.Context) {
	register, err := h.inventoryService.GetInventory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory retrieved successfully", register)
}

// Update replaces the inventory register
func (h *InventoryHandler) Update(c *gin.Context) {
	var req request.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	register, err := h.inventoryService.UpdateInventory(c.Request.Context(), &service.UpdateInventoryInput{
		Total: *req.Total,
		Sizes: req.Sizes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory updated successfully", register)
}
