package request

import (
	"github.com/nilkanthplet/BP-1.0/internal/application/service"
	"github.com/nilkanthplet/BP-1.0/pkg/utils"
)

// SizeLineRequest is one size line. Numbers may arrive as strings and
// are read leniently. pisces and mark are accepted as older spellings.
type SizeLineRequest struct {
	Size        string            `json:"size"`
	Pieces      *utils.LenientInt `json:"pieces"`
	Pisces      *utils.LenientInt `json:"pisces"`
	MarkedValue *utils.LenientInt `json:"markedValue"`
	Mark        *utils.LenientInt `json:"mark"`
	Total       utils.LenientInt  `json:"total"`
}

func firstSet(values ...*utils.LenientInt) int64 {
	for _, v := range values {
		if v != nil {
			return v.Int64()
		}
	}
	return 0
}

// ToInput converts the line for the service layer
func (r SizeLineRequest) ToInput() service.SizeLineInput {
	return service.SizeLineInput{
		Size:        r.Size,
		Pieces:      firstSet(r.Pieces, r.Pisces),
		MarkedValue: firstSet(r.MarkedValue, r.Mark),
		Total:       r.Total.Int64(),
	}
}

func sizeInputs(lines []SizeLineRequest) []service.SizeLineInput {
	out := make([]service.SizeLineInput, len(lines))
	for i, line := range lines {
		out[i] = line.ToInput()
	}
	return out
}

// ReceiptMetadataRequest carries the free-form receipt details
type ReceiptMetadataRequest struct {
	FullReceiptDetails *string `json:"fullReceiptDetails"`
}

// CreateReturnItemRequest represents a return receipt creation request
type CreateReturnItemRequest struct {
	ReceiptNumber      string                  `json:"receiptNumber" binding:"max=100"`
	Date               *Date                   `json:"date"`
	UserID             string                  `json:"userId"`
	Name               string                  `json:"name"`
	Site               string                  `json:"site"`
	Phone              string                  `json:"phone"`
	Sizes              []SizeLineRequest       `json:"sizes"`
	Total              utils.LenientInt        `json:"total"`
	GrandTotal         utils.LenientInt        `json:"grandTotal"`
	Notes              string                  `json:"notes"`
	SelectedMarkOption string                  `json:"selectedMarkOption"`
	Metadata           *ReceiptMetadataRequest `json:"metadata"`
}

// ToInput converts the request for the service layer
func (r *CreateReturnItemRequest) ToInput() *service.CreateReturnReceiptInput {
	input := &service.CreateReturnReceiptInput{
		ReceiptNumber:      r.ReceiptNumber,
		Date:               r.Date.Ptr(),
		UserID:             r.UserID,
		Name:               r.Name,
		Site:               r.Site,
		Phone:              r.Phone,
		Sizes:              sizeInputs(r.Sizes),
		Total:              r.Total.Int64(),
		GrandTotal:         r.GrandTotal.Int64(),
		Notes:              r.Notes,
		SelectedMarkOption: r.SelectedMarkOption,
	}
	if r.Metadata != nil && r.Metadata.FullReceiptDetails != nil {
		input.FullReceiptDetails = *r.Metadata.FullReceiptDetails
	}
	return input
}

// UpdateReturnItemRequest is a partial receipt update; absent fields are kept
type UpdateReturnItemRequest struct {
	Date               *Date                   `json:"date"`
	UserID             *string                 `json:"userId"`
	Name               *string                 `json:"name"`
	Site               *string                 `json:"site"`
	Phone              *string                 `json:"phone"`
	Sizes              *[]SizeLineRequest      `json:"sizes"`
	Total              *utils.LenientInt       `json:"total"`
	GrandTotal         *utils.LenientInt       `json:"grandTotal"`
	Notes              *string                 `json:"notes"`
	SelectedMarkOption *string                 `json:"selectedMarkOption"`
	Metadata           *ReceiptMetadataRequest `json:"metadata"`
}

// ToInput converts the request for the service layer
func (r *UpdateReturnItemRequest) ToInput(receiptNumber string) *service.UpdateReturnReceiptInput {
	input := &service.UpdateReturnReceiptInput{
		ReceiptNumber:      receiptNumber,
		Date:               r.Date.Ptr(),
		UserID:             r.UserID,
		Name:               r.Name,
		Site:               r.Site,
		Phone:              r.Phone,
		Notes:              r.Notes,
		SelectedMarkOption: r.SelectedMarkOption,
	}
	if r.Sizes != nil {
		sizes := sizeInputs(*r.Sizes)
		input.Sizes = &sizes
	}
	if r.Total != nil {
		total := r.Total.Int64()
		input.Total = &total
	}
	if r.GrandTotal != nil {
		grand := r.GrandTotal.Int64()
		input.GrandTotal = &grand
	}
	if r.Metadata != nil {
		input.FullReceiptDetails = r.Metadata.FullReceiptDetails
	}
	return input
}

// ReturnItemFilterRequest represents receipt query parameters
type ReturnItemFilterRequest struct {
	UserID    string `form:"userId"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}
