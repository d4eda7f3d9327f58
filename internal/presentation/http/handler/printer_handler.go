package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nilkanthplet/BP-1.0/internal/application/service"
	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/dto/response"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// PrintReturnItem prints a return receipt.
func (h *PrinterHandler) PrintReturnItem(c *gin.Context) {
	out, err := h.printerService.PrintReturnReceipt(c.Request.Context(), c.Param("receiptNumber"))
	h.respond(c, out, err, "Return receipt printed successfully")
}

// PrintBill prints a bill statement.
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	out, err := h.printerService.PrintBill(c.Request.Context(), c.Param("billNumber"))
	h.respond(c, out, err, "Bill statement printed successfully")
}

// respond still returns the printout when only the printer failed, so the
// client can display it
func (h *PrinterHandler) respond(c *gin.Context, out *entity.Printout, err error, message string) {
	if err != nil {
		if out != nil {
			response.OK(c, "Printout generated but printing failed", gin.H{
				"printout": out,
				"warning":  apperror.GetAppError(err).Detail(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, message, gin.H{"printout": out})
}
