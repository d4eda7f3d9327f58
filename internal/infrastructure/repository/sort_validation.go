package repository

import "strings"

// ValidateSortOrder normalizes the sort order to ASC or DESC, DESC by default
func ValidateSortOrder(order string) string {
	switch strings.ToUpper(strings.TrimSpace(order)) {
	case "ASC", "1":
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField maps a requested field to a column from the allow list,
// falling back to defaultColumn
func ValidateSortField(field string, allowed map[string]string, defaultColumn string) string {
	if column, ok := allowed[strings.TrimSpace(field)]; ok {
		return column
	}
	return defaultColumn
}

// ReturnReceiptSortFields maps API field names (and column names) to columns
var ReturnReceiptSortFields = map[string]string{
	"createdAt":          "created_at",
	"created_at":         "created_at",
	"updatedAt":          "updated_at",
	"updated_at":         "updated_at",
	"date":               "date",
	"receiptNumber":      "receipt_number",
	"receipt_number":     "receipt_number",
	"userId":             "user_id",
	"user_id":            "user_id",
	"name":               "name",
	"site":               "site",
	"phone":              "phone",
	"total":              "total",
	"grandTotal":         "grand_total",
	"grand_total":        "grand_total",
	"selectedMarkOption": "selected_mark_option",
	"metadata.createdAt": "metadata_created_at",
}
