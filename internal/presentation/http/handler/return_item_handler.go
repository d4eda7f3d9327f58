package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nilkanthplet/BP-1.0/internal/application/service"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/dto/request"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/dto/response"
)

// ReturnItemHandler handles return receipt HTTP requests
type ReturnItemHandler struct {
	receiptService *service.ReturnReceiptService
}

// NewReturnItemHandler creates a new return item handler
func NewReturnItemHandler(receiptService *service.ReturnReceiptService) *ReturnItemHandler {
	return &ReturnItemHandler{receiptService: receiptService}
}

// List handles querying return receipts
func (h *ReturnItemHandler) List(c *gin.Context) {
	var filter request.ReturnItemFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	startDate, err := parseDateQuery(c, "startDate", false)
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := parseDateQuery(c, "endDate", true)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipts, err := h.receiptService.QueryReturnReceipts(c.Request.Context(), &service.QueryReturnReceiptsInput{
		StartDate: startDate,
		EndDate:   endDate,
		UserID:    filter.UserID,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Return items retrieved successfully", receipts)
}

// Create handles recording a return receipt
func (h *ReturnItemHandler) Create(c *gin.Context) {
	var req request.CreateReturnItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.CreateReturnReceipt(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Return item created successfully", receipt)
}

// Get handles getting a single receipt
func (h *ReturnItemHandler) Get(c *gin.Context) {
	receipt, err := h.receiptService.GetReturnReceipt(c.Request.Context(), c.Param("receiptNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Return item retrieved successfully", receipt)
}

// Update handles a partial receipt update
func (h *ReturnItemHandler) Update(c *gin.Context) {
	var req request.UpdateReturnItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.UpdateReturnReceipt(c.Request.Context(), req.ToInput(c.Param("receiptNumber")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Return item updated successfully", receipt)
}

// Delete handles deleting a receipt
func (h *ReturnItemHandler) Delete(c *gin.Context) {
	if err := h.receiptService.DeleteReturnReceipt(c.Request.Context(), c.Param("receiptNumber")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Return item deleted successfully", nil)
}
