package worker

// export_worker.go
// Processes PDF export jobs from QueueExport: renders the invoice document,
// writes it under the PDF storage path, records the path on the invoice row
// and optionally chains an email job to the receiver.

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bonison01/invoice-cargo/internal/pdf"
	"github.com/bonison01/invoice-cargo/internal/repository"
)

// ExportWorker renders and stores invoice PDFs off the request path.
type ExportWorker struct {
	repo        repository.InvoiceRepository
	gen         *pdf.Generator
	dispatcher  *Dispatcher
	storagePath string
}

func NewExportWorker(repo repository.InvoiceRepository, gen *pdf.Generator, dispatcher *Dispatcher, storagePath string) *ExportWorker {
	return &ExportWorker{repo: repo, gen: gen, dispatcher: dispatcher, storagePath: storagePath}
}

// Process renders one invoice to disk. Returns an error to trigger the pool's
// retry/DLQ handling.
func (w *ExportWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ExportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("export_worker: invalid payload: %w", err)
	}

	id, err := uuid.Parse(payload.InvoiceID)
	if err != nil {
		return fmt.Errorf("export_worker: invalid invoice id %q: %w", payload.InvoiceID, err)
	}

	inv, err := w.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("export_worker: load invoice %s: %w", id, err)
	}

	out, filename, err := w.gen.Generate(inv)
	if err != nil {
		return fmt.Errorf("export_worker: %w", err)
	}

	if err := os.MkdirAll(w.storagePath, 0o755); err != nil {
		return fmt.Errorf("export_worker: create storage dir: %w", err)
	}
	path := filepath.Join(w.storagePath, filename)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("export_worker: write pdf: %w", err)
	}

	if err := w.repo.SetPDFPath(ctx, id, path); err != nil {
		return fmt.Errorf("export_worker: record pdf path: %w", err)
	}
	log.Info().Str("invoice", inv.InvoiceNumber).Str("path", path).Msg("export_worker: pdf stored")

	if payload.EmailTo != "" {
		return w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
			ToEmail: payload.EmailTo,
			Subject: fmt.Sprintf("Invoice %s from %s", inv.InvoiceNumber, inv.CompanyName),
			Body:    fmt.Sprintf("Please find attached invoice %s.", inv.InvoiceNumber),
			PDFPath: path,
		})
	}
	return nil
}
