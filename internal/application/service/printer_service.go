package service

import (
	"context"
	"fmt"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
	"github.com/nilkanthplet/BP-1.0/pkg/printer"
	"go.uber.org/zap"
)

// PrinterService formats receipts and bill statements and sends them to
// the thermal printer.
type PrinterService struct {
	printer     printer.Printer
	receiptRepo repository.ReturnReceiptRepository
	billRepo    repository.BillRepository
	printerType string
	storeName   string
	charWidth   int
	log         *zap.Logger
}

// PrinterOptions configures the printed layout
type PrinterOptions struct {
	Type      string
	StoreName string
	CharWidth int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	receiptRepo repository.ReturnReceiptRepository,
	billRepo repository.BillRepository,
	opts PrinterOptions,
	log *zap.Logger,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		receiptRepo: receiptRepo,
		billRepo:    billRepo,
		printerType: opts.Type,
		storeName:   opts.StoreName,
		charWidth:   opts.CharWidth,
		log:         log,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReturnReceipt prints a return receipt. The printout is returned
// even when printing fails so the caller can show it instead.
func (s *PrinterService) PrintReturnReceipt(ctx context.Context, receiptNumber string) (*entity.Printout, error) {
	receipt, err := s.receiptRepo.GetByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return nil, classify(err, "Failed to fetch return receipt")
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	out := ReturnReceiptPrintout(receipt, s.storeName)
	return out, s.send(out)
}

// PrintBill prints a bill statement with its payment history
func (s *PrinterService) PrintBill(ctx context.Context, billNumber string) (*entity.Printout, error) {
	bill, err := s.billRepo.GetByBillNumber(ctx, billNumber)
	if err != nil {
		return nil, classify(err, "Failed to fetch bill")
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	out := BillPrintout(bill, s.storeName)
	return out, s.send(out)
}

func (s *PrinterService) send(out *entity.Printout) error {
	if err := s.printer.Print(FormatPrintout(out, s.charWidth)); err != nil {
		s.log.Error("printer error", zap.String("number", out.Number), zap.Error(err))
		return apperror.NewStorageError("Failed to print", err)
	}
	return nil
}

// ReturnReceiptPrintout lays out a return receipt for printing
func ReturnReceiptPrintout(r *entity.ReturnReceipt, storeName string) *entity.Printout {
	out := &entity.Printout{
		Header: entity.PrintoutHeader{StoreName: storeName},
		Title:  "RETURN RECEIPT",
		Number: r.ReceiptNumber,
		Date:   r.Date.Format("2006-01-02"),
		Party:  fmt.Sprintf("%s (%s)", r.Name, r.UserID),
		Footer: "Thank you!",
	}

	if r.Site != "" {
		out.Details = append(out.Details, entity.PrintoutField{Label: "Site:", Value: r.Site})
	}
	if r.Phone != "" {
		out.Details = append(out.Details, entity.PrintoutField{Label: "Phone:", Value: r.Phone})
	}
	if r.SelectedMarkOption != "" {
		out.Details = append(out.Details, entity.PrintoutField{Label: "Mark:", Value: r.SelectedMarkOption})
	}

	for _, size := range r.Sizes {
		out.Lines = append(out.Lines, entity.PrintoutLine{
			Label:    size.Size,
			Quantity: size.Pieces,
			Amount:   size.Total,
		})
	}

	out.Totals = []entity.PrintoutField{
		{Label: "Total:", Value: fmt.Sprintf("%d", r.Total)},
		{Label: "GRAND TOTAL:", Value: fmt.Sprintf("%d", r.GrandTotal)},
	}
	if r.Notes != "" {
		out.Details = append(out.Details, entity.PrintoutField{Label: "Notes:", Value: r.Notes})
	}

	return out
}

// BillPrintout lays out a bill statement for printing
func BillPrintout(b *entity.Bill, storeName string) *entity.Printout {
	out := &entity.Printout{
		Header: entity.PrintoutHeader{StoreName: storeName},
		Title:  "BILL STATEMENT",
		Number: b.BillNumber,
		Date:   b.Metadata.CreatedAt.Format("2006-01-02 15:04"),
		Party:  fmt.Sprintf("%s (%s)", b.UserName, b.UserID),
		Details: []entity.PrintoutField{
			{Label: "Period:", Value: b.StartDate.Format("2006-01-02") + " - " + b.EndDate.Format("2006-01-02")},
			{Label: "Status:", Value: b.Status.String()},
		},
		Footer: "Thank you for your business!",
	}

	for _, p := range b.Payments {
		out.Lines = append(out.Lines, entity.PrintoutLine{
			Label:  p.PaymentDate.Format("2006-01-02") + " " + p.PaymentMethod.String(),
			Amount: p.Amount,
		})
	}

	out.Totals = []entity.PrintoutField{
		{Label: "TOTAL:", Value: fmt.Sprintf("%d", b.TotalAmount)},
		{Label: "Paid:", Value: fmt.Sprintf("%d", b.CompletedPayment)},
		{Label: "Due:", Value: fmt.Sprintf("%d", b.DuePayment)},
	}

	return out
}

// FormatPrintout converts a Printout into ESC/POS bytes.
func FormatPrintout(p *entity.Printout, charWidth int) []byte {
	doc := printer.NewDocument(charWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(p.Header.StoreName).
		SetFontSize(printer.FontNormal).
		Text(p.Title).
		SetBold(false)

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("No:", p.Number).
		KeyValue("Date:", p.Date)
	if p.Party != "" {
		doc.KeyValue("Party:", p.Party)
	}
	for _, d := range p.Details {
		doc.KeyValue(d.Label, d.Value)
	}

	doc.Separator('-')

	for _, line := range p.Lines {
		if line.Quantity != 0 {
			doc.ItemLine(int(line.Quantity), line.Label, fmt.Sprintf("%d", line.Amount))
		} else {
			doc.KeyValue(line.Label, fmt.Sprintf("%d", line.Amount))
		}
	}

	doc.Separator('-')

	for i, t := range p.Totals {
		bold := i == len(p.Totals)-1
		doc.SetBold(bold).KeyValue(t.Label, t.Value)
	}
	doc.SetBold(false)

	doc.Separator('-')

	if p.Footer != "" {
		doc.SetAlign(printer.AlignCenter).
			LineFeed().
			Text(p.Footer).
			LineFeed().
			SetAlign(printer.AlignLeft)
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
