package printer

import (
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"
)

// Printer sends raw ESC/POS data to a thermal printer.
type Printer interface {
	Print(data []byte) error
	Close() error
	IsConnected() bool
}

// Supported printer types
const (
	TypeUSB     = "usb"
	TypeNetwork = "network"
	TypeNone    = "none"
)

// Config selects and addresses a printer
type Config struct {
	Type    string
	USBPath string // e.g. /dev/usb/lp0
	Address string // host:port, e.g. 192.168.1.100:9100
}

// New creates the printer described by cfg
func New(cfg Config) (Printer, error) {
	switch cfg.Type {
	case TypeUSB:
		if cfg.USBPath == "" {
			return nil, fmt.Errorf("printer: usb path is required for %s printers", TypeUSB)
		}
		return &devicePrinter{path: cfg.USBPath}, nil
	case TypeNetwork:
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: address is required for %s printers", TypeNetwork)
		}
		return &tcpPrinter{
			address:      cfg.Address,
			dialTimeout:  5 * time.Second,
			writeTimeout: 10 * time.Second,
		}, nil
	case TypeNone, "":
		return Discard(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q", cfg.Type)
	}
}

// devicePrinter writes to a device file, opened per job
type devicePrinter struct {
	path string
}

func (p *devicePrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

func (p *devicePrinter) Close() error { return nil }

func (p *devicePrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// tcpPrinter dials a raw port printer for every job
type tcpPrinter struct {
	address      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

func (p *tcpPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: connect %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *tcpPrinter) Close() error { return nil }

func (p *tcpPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// WriterPrinter copies every job to an io.Writer, e.g. a spool file
type WriterPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterPrinter creates a printer that writes jobs to w
func NewWriterPrinter(w io.Writer) *WriterPrinter {
	return &WriterPrinter{w: w}
}

func (p *WriterPrinter) Print(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := p.w.Write(data)
	return err
}

func (p *WriterPrinter) Close() error {
	if c, ok := p.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (p *WriterPrinter) IsConnected() bool { return true }

type discardPrinter struct{}

// Discard returns a printer that drops every job. It reports itself as
// not connected.
func Discard() Printer {
	return discardPrinter{}
}

func (discardPrinter) Print([]byte) error { return nil }
func (discardPrinter) Close() error       { return nil }
func (discardPrinter) IsConnected() bool  { return false }
