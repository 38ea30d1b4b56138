package ingestion

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	domainShipment "courier-track/internal/domain/shipment"
	"courier-track/internal/logger"
	shipmentUsecase "courier-track/internal/usecase/shipment"
)

// Processor turns location scans into tracking history events with a
// pool of concurrent workers. Scans never change a shipment's status;
// they only enrich the history with checkpoint coordinates.
type Processor struct {
	shipmentRepo domainShipment.Repository

	workerCount int
	scanChan    chan *LocationScanMessage

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProcessor creates a new location scan processor
func NewProcessor(shipmentRepo domainShipment.Repository, workerCount, bufferSize int) *Processor {
	ctx, cancel := context.WithCancel(context.Background())

	return &Processor{
		shipmentRepo: shipmentRepo,
		workerCount:  workerCount,
		scanChan:     make(chan *LocationScanMessage, bufferSize),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start starts the processor workers
func (p *Processor) Start() {
	logger.Info("Starting scan processor",
		zap.Int("workers", p.workerCount),
		zap.Int("buffer_size", cap(p.scanChan)),
	)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.scanWorker(i)
	}
}

// Stop drains the queue and stops the workers
func (p *Processor) Stop() {
	logger.Info("Stopping scan processor")

	p.cancel()
	close(p.scanChan)
	p.wg.Wait()

	logger.Info("Scan processor stopped")
}

// ProcessScan queues a location scan for processing
func (p *Processor) ProcessScan(msg *LocationScanMessage) {
	if err := ValidateLocationScan(msg); err != nil {
		logger.Warn("Invalid location scan",
			zap.String("tracking_id", msg.TrackingID),
			zap.Error(err),
		)
		return
	}

	select {
	case p.scanChan <- msg:
	case <-p.ctx.Done():
	default:
		logger.Warn("Scan buffer full, dropping message",
			zap.String("tracking_id", msg.TrackingID),
		)
	}
}

func (p *Processor) scanWorker(id int) {
	defer p.wg.Done()

	logger.Debug("Scan worker started", zap.Int("worker", id))

	for {
		select {
		case msg, ok := <-p.scanChan:
			if !ok {
				return
			}
			if err := p.processScan(msg); err != nil {
				logger.Error("Failed to process location scan",
					zap.Int("worker", id),
					zap.String("tracking_id", msg.TrackingID),
					zap.Error(err),
				)
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// processScan appends a history event carrying the shipment's current
// status label and the scanned coordinates.
func (p *Processor) processScan(msg *LocationScanMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shipment, err := p.shipmentRepo.GetByTrackingID(ctx, msg.TrackingID)
	if err != nil {
		return err
	}

	description := msg.Description
	if description == "" {
		description = "Location scan at " + msg.Location
	}

	event := &domainShipment.TrackingEvent{
		ShipmentID:  shipment.ID,
		Status:      shipmentUsecase.StatusLabel(shipment.Status),
		Location:    msg.Location,
		Description: description,
		Latitude:    msg.Latitude,
		Longitude:   msg.Longitude,
		Timestamp:   msg.Timestamp,
	}

	if err := p.shipmentRepo.AppendEvent(ctx, event); err != nil {
		return err
	}

	logger.Info("Location scan recorded",
		zap.String("tracking_id", msg.TrackingID),
		zap.String("location", msg.Location),
		zap.String("event", "location_scan_recorded"),
	)

	return nil
}
