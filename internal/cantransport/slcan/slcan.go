// Package slcan implements transport.NetworkStack over a serial-attached
// USB-CAN adapter speaking the SLCAN ASCII line protocol: outbound frames
// are encoded as "TIIIIIIIILDD..\r" (extended 29-bit ID) and inbound frames are
// parsed from "t"/"T" reply lines. This is a reference implementation of
// the "external collaborator" network stack spec.md describes — it does
// not attempt ISO 11783 transport-layer segmentation (BAM/ETP) or address
// claiming; it only turns transport.Frame values into CAN frames and back.
//
// Grounded on the teacher's internal/poller/modbus/client.go Config/New/
// Close shape and Thermoquad-heliostat/cmd/connection.go's
// OpenSerialConnection wrapper.
package slcan

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goburrow/serial"

	"github.com/agrielectronics/isovt/internal/transport"
)

// Config is the minimal serial transport configuration.
type Config struct {
	Address  string // e.g. "/dev/ttyUSB0"
	BaudRate int
	Timeout  time.Duration
}

// Stack is a transport.NetworkStack backed by an SLCAN serial adapter.
type Stack struct {
	port   serial.Port
	writeMu sync.Mutex

	frames chan transport.Frame

	online   sync.Map // uint8 -> struct{}
	closeOnce sync.Once
	done      chan struct{}
}

// New opens the serial port and starts the background reader that decodes
// inbound SLCAN lines into transport.Frame values.
func New(cfg Config) (*Stack, error) {
	if cfg.Address == "" {
		return nil, errors.New("slcan: address required")
	}
	baud := cfg.BaudRate
	if baud == 0 {
		baud = 115200
	}
	port, err := serial.Open(&serial.Config{
		Address:  cfg.Address,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("slcan: open %s: %w", cfg.Address, err)
	}

	s := &Stack{
		port:   port,
		frames: make(chan transport.Frame, 64),
		done:   make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

// Close stops the reader goroutine and closes the serial port.
func (s *Stack) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.port.Close()
	})
	return err
}

// Frames implements transport.NetworkStack.
func (s *Stack) Frames() <-chan transport.Frame {
	return s.frames
}

// PartnerOnline implements transport.NetworkStack by tracking which source
// addresses have been observed on frames received since the stack opened.
// A real ISO 11783 stack would consult its address-claim table instead;
// this reference adapter has none, so "online" means "has spoken".
func (s *Stack) PartnerOnline(partnerAddress uint8) bool {
	_, ok := s.online.Load(partnerAddress)
	return ok
}

// SendFrame implements transport.NetworkStack by encoding f as an SLCAN
// transmit line and writing it to the serial port. onComplete is called
// synchronously since SLCAN gives no separate link-layer acknowledgment;
// success reflects only that the write reached the adapter.
func (s *Stack) SendFrame(f transport.Frame, onComplete func(success bool)) bool {
	line, err := encodeSLCAN(f)
	if err != nil {
		if onComplete != nil {
			onComplete(false)
		}
		return false
	}

	s.writeMu.Lock()
	_, werr := s.port.Write([]byte(line))
	s.writeMu.Unlock()

	ok := werr == nil
	if onComplete != nil {
		onComplete(ok)
	}
	return ok
}

// encodeSLCAN builds a "TIIIIIIIILDD..\r" transmit line whose 29-bit
// extended CAN ID is the frame's PGN shifted left 8 bits with the source
// address in the low byte, the common SAE J1939-on-SLCAN convention of
// folding PGN+SA into the extended identifier.
func encodeSLCAN(f transport.Frame) (string, error) {
	if len(f.Data) > 8 {
		return "", fmt.Errorf("slcan: frame data length %d exceeds 8 bytes for a single CAN frame", len(f.Data))
	}
	canID := (f.PGN << 8) | uint32(f.SourceAddress)
	var b strings.Builder
	fmt.Fprintf(&b, "T%08X%d", canID, len(f.Data))
	for _, by := range f.Data {
		fmt.Fprintf(&b, "%02X", by)
	}
	b.WriteString("\r")
	return b.String(), nil
}

// readLoop parses inbound SLCAN reply lines until the port is closed.
func (s *Stack) readLoop() {
	defer close(s.frames)
	r := bufio.NewReader(s.port)
	for {
		select {
		case <-s.done:
			return
		default:
		}
		line, err := r.ReadString('\r')
		if err != nil {
			return
		}
		f, srcAddr, ok := decodeSLCAN(line)
		if !ok {
			continue
		}
		s.online.Store(srcAddr, struct{}{})
		select {
		case s.frames <- f:
		case <-s.done:
			return
		}
	}
}

// decodeSLCAN parses a "t"/"T" reply line into a transport.Frame. The
// source address is recovered from the low byte of the identifier, the
// same convention encodeSLCAN uses.
func decodeSLCAN(line string) (f transport.Frame, srcAddr uint8, ok bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 {
		return transport.Frame{}, 0, false
	}
	extended := line[0] == 'T'
	idLen := 3
	if extended {
		idLen = 8
	}
	if len(line) < 1+idLen+1 {
		return transport.Frame{}, 0, false
	}
	id, err := strconv.ParseUint(line[1:1+idLen], 16, 32)
	if err != nil {
		return transport.Frame{}, 0, false
	}
	dlcStr := line[1+idLen : 1+idLen+1]
	dlc, err := strconv.Atoi(dlcStr)
	if err != nil || dlc < 0 || dlc > 8 {
		return transport.Frame{}, 0, false
	}
	dataStart := 1 + idLen + 1
	dataEnd := dataStart + dlc*2
	if len(line) < dataEnd {
		return transport.Frame{}, 0, false
	}
	data := make([]byte, dlc)
	for i := 0; i < dlc; i++ {
		v, err := strconv.ParseUint(line[dataStart+i*2:dataStart+i*2+2], 16, 8)
		if err != nil {
			return transport.Frame{}, 0, false
		}
		data[i] = byte(v)
	}
	srcAddr = uint8(id & 0xFF)
	pgn := uint32(id) >> 8
	return transport.Frame{PGN: pgn, SourceAddress: srcAddr, Data: data}, srcAddr, true
}
