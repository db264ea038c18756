package infra

// pdf.go — settlement sheet generation using go-pdf/fpdf.
// One A4 page per trip: header with truck/crew/zone, product table with
// quantities out, returned and sold, crate table, and the settlement totals.
// The output file is saved to storagePath/tournee_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amine-amroussi/gestion-de-stock/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateTripPDF renders the settlement sheet for a trip invoice view and
// returns the absolute path to the generated file.
func GenerateTripPDF(inv *dto.InvoiceResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("tournee_%d.pdf", inv.TripID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Gestion de Stock", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	title := "Feuille de chargement"
	if inv.Type != "chargement" {
		title = "Feuille de règlement"
	}
	pdf.CellFormat(contentW, 6, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Tournée N° %d — %s", inv.TripID, inv.Date), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Camion : %s    Zone : %s", inv.Truck, inv.Zone), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Chauffeur : %s    Vendeur : %s", inv.Driver, inv.Seller), "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// Product table
	col := []float64{contentW * 0.34, contentW * 0.12, contentW * 0.12, contentW * 0.12, contentW * 0.14, contentW * 0.16}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col[0], 6, "Produit", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[1], 6, "Sortie", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col[2], 6, "Retour", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col[3], 6, "Vendu", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col[4], 6, "Prix unité", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col[5], 6, "Montant", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, line := range inv.Products {
		reutour, vendu, montant := "-", "-", "-"
		if line.QttReutour != nil {
			reutour = fmt.Sprintf("%d", *line.QttReutour)
		}
		if line.QttVendu != nil {
			vendu = fmt.Sprintf("%d", *line.QttVendu)
		}
		if line.TotalRevenue != nil {
			montant = line.TotalRevenue.StringFixed(2)
		}
		pdf.CellFormat(col[0], 5, line.Designation, "", 0, "L", false, 0, "")
		pdf.CellFormat(col[1], 5, fmt.Sprintf("%d + %d", line.QttOut, line.QttOutUnite), "", 0, "C", false, 0, "")
		pdf.CellFormat(col[2], 5, reutour, "", 0, "C", false, 0, "")
		pdf.CellFormat(col[3], 5, vendu, "", 0, "C", false, 0, "")
		pdf.CellFormat(col[4], 5, line.PriceUnite.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col[5], 5, montant, "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Crate table
	if len(inv.Boxes) > 0 {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(contentW*0.5, 6, "Caisse", "B", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.25, 6, "Sortie", "B", 0, "C", false, 0, "")
		pdf.CellFormat(contentW*0.25, 6, "Retour", "B", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		for _, line := range inv.Boxes {
			in := "-"
			if line.QttIn != nil {
				in = fmt.Sprintf("%d", *line.QttIn)
			}
			pdf.CellFormat(contentW*0.5, 5, line.Designation, "", 0, "L", false, 0, "")
			pdf.CellFormat(contentW*0.25, 5, fmt.Sprintf("%d", line.QttOut), "", 0, "C", false, 0, "")
			pdf.CellFormat(contentW*0.25, 5, in, "", 1, "C", false, 0, "")
		}
		pdf.Ln(3)
	}

	// Settlement totals
	if inv.Totals.WaitedAmount != nil {
		pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW*0.6, 6, "Montant attendu", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 6, inv.Totals.WaitedAmount.StringFixed(2), "", 1, "R", false, 0, "")
		pdf.CellFormat(contentW*0.6, 6, "Montant reçu", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 6, inv.Totals.ReceivedAmount.StringFixed(2), "", 1, "R", false, 0, "")
		pdf.CellFormat(contentW*0.6, 6, "Écart", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 6, inv.Totals.Deff.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
