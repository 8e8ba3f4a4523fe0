// cmd/vtclient-demo/main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/goburrow/modbus"

	"github.com/agrielectronics/isovt"
	"github.com/agrielectronics/isovt/internal/cantransport/slcan"
	"github.com/agrielectronics/isovt/internal/config"
)

// This demo is the "application layer" the core library treats as an
// external collaborator: it wires a non-CAN sensor bus (Modbus TCP) into
// a VT object pool by polling one holding register on a ticker and
// forwarding each reading into a numeric output field via
// Client.SendChangeNumericValue. It is deliberately outside the core
// state machine/codec/dispatch packages.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: vtclient-demo <config.yaml>")
	}

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(&cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(&cfg)

	network, err := slcan.New(slcan.Config{
		Address:  "/dev/ttyUSB0",
		BaudRate: 115200,
		Timeout:  time.Second,
	})
	if err != nil {
		log.Fatalf("slcan open failed: %v", err)
	}
	defer network.Close()

	client := isovt.NewClient(
		cfg.Client.SourceAddress,
		cfg.Client.PartnerAddress,
		network,
		isovt.WithResponseTimeout(time.Duration(cfg.Client.ResponseTimeoutMs)*time.Millisecond),
		isovt.WithStatusTimeout(time.Duration(cfg.Client.StatusTimeoutMs)*time.Millisecond),
		isovt.WithMaintenanceInterval(time.Duration(cfg.Client.MaintenanceIntervalMs)*time.Millisecond),
	)

	// A real deployment supplies its own composed pool; the demo registers
	// an empty placeholder pool (see demoObjectPool).
	client.RegisterObjectPool(demoObjectPool())
	client.Initialize(true)
	defer client.Terminate()

	sensor := modbus.NewTCPClientHandler("127.0.0.1:502")
	sensor.Timeout = 2 * time.Second
	sensor.SlaveId = 1
	if err := sensor.Connect(); err != nil {
		log.Fatalf("modbus connect failed: %v", err)
	}
	defer sensor.Close()
	sensorClient := modbus.NewClient(sensor)

	const outputValueObjectID = 1001

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		raw, err := sensorClient.ReadHoldingRegisters(0, 1)
		if err != nil {
			log.Printf("sensor read failed: %v", err)
			continue
		}
		value := uint32(raw[0])<<8 | uint32(raw[1])
		if !client.SendChangeNumericValue(outputValueObjectID, value) {
			log.Printf("failed to push sensor value to VT (not yet connected?)")
		}
	}
}

// demoObjectPool is a placeholder; a real application builds its pool
// with an external object-pool authoring tool and embeds or streams the
// resulting bytes.
func demoObjectPool() []byte {
	return []byte{}
}
