package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
)

// GetOperatorID extracts the authenticated operator ID from the Gin context
func GetOperatorID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("operator_id")
	if !exists {
		return nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// GetOperatorPermissions extracts the operator permissions from the Gin context
func GetOperatorPermissions(c *gin.Context) []string {
	permissions, exists := c.Get("operator_permissions")
	if !exists {
		return nil
	}
	list, _ := permissions.([]string)
	return list
}

// dateLayouts are tried in order when reading dates from query strings
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// parseDateQuery reads an optional date query parameter. A bare date used
// as an end bound covers that whole day.
func parseDateQuery(c *gin.Context, name string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if endOfDay && layout == "2006-01-02" {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	return nil, apperror.NewInvalidInputError(name, "Invalid date format, use YYYY-MM-DD or RFC 3339")
}
