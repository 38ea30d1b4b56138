package ingestion

import (
	"fmt"

	"go.uber.org/zap"

	"courier-track/internal/config"
	domainShipment "courier-track/internal/domain/shipment"
	"courier-track/internal/logger"
	"courier-track/pkg/mqtt"
)

const (
	defaultWorkerCount = 4
	defaultBufferSize  = 1000
)

// Worker subscribes to the broker's location scan topic and feeds the
// processor. Hub scanners publish one JSON scan per message.
type Worker struct {
	client    *mqtt.Client
	processor *Processor
	topic     string
	qos       byte
}

// NewWorker wires the MQTT client and scan processor from config.
func NewWorker(cfg *config.Config, shipmentRepo domainShipment.Repository) *Worker {
	client := mqtt.NewClient(&mqtt.Config{
		Broker:         cfg.MQTT.Broker,
		ClientID:       cfg.MQTT.ClientID,
		Username:       cfg.MQTT.Username,
		Password:       cfg.MQTT.Password,
		KeepAlive:      cfg.MQTT.KeepAlive,
		ConnectTimeout: cfg.MQTT.ConnectTimeout,
		ReconnectMax:   cfg.MQTT.ReconnectMax,
	})

	return &Worker{
		client:    client,
		processor: NewProcessor(shipmentRepo, defaultWorkerCount, defaultBufferSize),
		topic:     cfg.MQTT.LocationTopic,
		qos:       byte(cfg.MQTT.QoS),
	}
}

// Start connects to the broker and begins consuming scans.
func (w *Worker) Start() error {
	w.processor.Start()

	if err := w.client.Connect(); err != nil {
		w.processor.Stop()
		return fmt.Errorf("failed to start ingestion worker: %w", err)
	}

	if err := w.client.Subscribe(w.topic, w.qos, w.handleMessage); err != nil {
		w.client.Disconnect()
		w.processor.Stop()
		return fmt.Errorf("failed to start ingestion worker: %w", err)
	}

	logger.Info("Ingestion worker started",
		zap.String("topic", w.topic),
		zap.String("broker", w.client.Broker()),
	)

	return nil
}

// Stop unsubscribes, disconnects and drains pending scans.
func (w *Worker) Stop() {
	if err := w.client.Unsubscribe(w.topic); err != nil {
		logger.Warn("Failed to unsubscribe from location topic", zap.Error(err))
	}
	w.client.Disconnect()
	w.processor.Stop()

	logger.Info("Ingestion worker stopped")
}

func (w *Worker) handleMessage(topic string, payload []byte) {
	msg, err := ParseLocationScan(payload)
	if err != nil {
		logger.Warn("Failed to parse location scan",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}

	w.processor.ProcessScan(msg)
}
