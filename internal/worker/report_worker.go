package worker

// report_worker.go
// Processes settlement report jobs enqueued when a trip is closed: renders the
// settlement sheet PDF and mails it to the configured report address.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/infra"

	"github.com/rs/zerolog/log"
)

// TripReader is the slice of the trip service the worker needs.
type TripReader interface {
	Invoice(ctx context.Context, id uint, invoiceType string) (*dto.InvoiceResponse, error)
}

type ReportWorker struct {
	trips       TripReader
	mailer      *infra.Mailer
	reportEmail string
	storagePath string
}

func NewReportWorker(trips TripReader, mailer *infra.Mailer, reportEmail, storagePath string) *ReportWorker {
	return &ReportWorker{
		trips:       trips,
		mailer:      mailer,
		reportEmail: reportEmail,
		storagePath: storagePath,
	}
}

// Process renders and sends one settlement report. Failures are logged and
// dropped, never retried.
func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload TripReportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("report_worker: invalid payload")
		return
	}
	if w.reportEmail == "" {
		log.Warn().Uint("trip_id", payload.TripID).Msg("report_worker: no report email configured — skipping")
		return
	}

	inv, err := w.trips.Invoice(ctx, payload.TripID, "afternoon")
	if err != nil {
		log.Error().Err(err).Uint("trip_id", payload.TripID).Msg("report_worker: trip lookup failed")
		return
	}

	pdfPath, err := infra.GenerateTripPDF(inv, w.storagePath)
	if err != nil {
		log.Error().Err(err).Uint("trip_id", payload.TripID).Msg("report_worker: pdf generation failed")
		return
	}

	subject := fmt.Sprintf("Règlement tournée N° %d — %s", inv.TripID, inv.Date)
	body := fmt.Sprintf("Camion %s, zone %s.\nLa feuille de règlement est en pièce jointe.", inv.Truck, inv.Zone)
	if err := w.mailer.SendReport(w.reportEmail, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Uint("trip_id", payload.TripID).Msg("report_worker: email send failed")
		return
	}
	log.Info().Uint("trip_id", payload.TripID).Msg("report_worker: settlement report sent")
}
