package request

// CreateBillRequest represents a bill creation request
type CreateBillRequest struct {
	UserID        string `json:"userId" binding:"required"`
	UserName      string `json:"userName" binding:"required"`
	TotalAmount   *int64 `json:"totalAmount" binding:"required"`
	DuePayment    *int64 `json:"duePayment"`
	StartDate     Date   `json:"startDate"`
	EndDate       Date   `json:"endDate"`
	PaymentMethod string `json:"paymentMethod"`
}

// AddPaymentRequest represents a payment against a bill
type AddPaymentRequest struct {
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// BillFilterRequest represents bill list parameters
type BillFilterRequest struct {
	UserID  string `form:"userId"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
