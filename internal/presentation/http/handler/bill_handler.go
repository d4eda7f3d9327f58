package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nilkanthplet/BP-1.0/internal/application/service"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/dto/request"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/dto/response"
	"github.com/nilkanthplet/BP-1.0/pkg/pagination"
)

// BillHandler handles bill and payment HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// List handles listing bills
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
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

	result, err := h.billService.ListBills(c.Request.Context(), &service.ListBillsInput{
		UserID:    filter.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Create handles issuing a bill
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		UserID:        req.UserID,
		UserName:      req.UserName,
		TotalAmount:   *req.TotalAmount,
		DuePayment:    req.DuePayment,
		StartDate:     req.StartDate.Time,
		EndDate:       req.EndDate.Time,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles getting a single bill
func (h *BillHandler) Get(c *gin.Context) {
	bill, err := h.billService.GetBill(c.Request.Context(), c.Param("billNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// AddPayment handles recording a payment against a bill
func (h *BillHandler) AddPayment(c *gin.Context) {
	var req request.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.AddPayment(c.Request.Context(), c.Param("billNumber"), req.Amount, req.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment added successfully", bill)
}
