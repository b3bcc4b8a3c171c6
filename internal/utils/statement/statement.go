// Package statement renders account statements as PDF or XLSX downloads.
package statement

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/traqbank/backoffice/internal/core/domain"
)

const dateFormat = "2006-01-02"

// Statement bundles everything a rendered statement shows.
type Statement struct {
	Person       domain.Person
	Account      domain.Account
	Transactions []domain.TransactionEntry
}

func (s Statement) holderName() string {
	name := s.Person.Surname
	if s.Person.Name != "" {
		if name != "" {
			name += ", "
		}
		name += s.Person.Name
	}
	if name == "" {
		name = s.Person.IDNumber
	}
	return name
}

// WritePDF renders the statement as a PDF document.
func (s Statement) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Account Statement")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 7, "Account: "+s.Account.AccountNumber)
	pdf.Cell(60, 7, "Holder: "+s.holderName())
	pdf.Ln(7)
	pdf.Cell(60, 7, "Status: "+s.Account.StatusCode.String())
	pdf.Cell(60, 7, "Balance: "+s.Account.OutstandingBalance.StringFixed(2))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(30, 7, "Date")
	pdf.Cell(30, 7, "Captured")
	pdf.Cell(30, 7, "Amount")
	pdf.Cell(90, 7, "Description")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 12)
	for _, txn := range s.Transactions {
		pdf.CellFormat(30, 7, txn.TransactionDate.Format(dateFormat), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, txn.CaptureDate.Format(dateFormat), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, txn.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(90, 7, txn.Description, "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}

	return pdf.Output(w)
}

// WriteXLSX renders the statement as an XLSX workbook.
func (s Statement) WriteXLSX(w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Statement")
	if err != nil {
		return err
	}

	row := sheet.AddRow()
	row.AddCell().SetValue("Account")
	row.AddCell().SetValue(s.Account.AccountNumber)
	row = sheet.AddRow()
	row.AddCell().SetValue("Holder")
	row.AddCell().SetValue(s.holderName())
	row = sheet.AddRow()
	row.AddCell().SetValue("Status")
	row.AddCell().SetValue(s.Account.StatusCode.String())
	row = sheet.AddRow()
	row.AddCell().SetValue("Balance")
	row.AddCell().SetValue(s.Account.OutstandingBalance.StringFixed(2))
	sheet.AddRow()

	row = sheet.AddRow()
	row.AddCell().SetValue("Date")
	row.AddCell().SetValue("Captured")
	row.AddCell().SetValue("Amount")
	row.AddCell().SetValue("Description")

	for _, txn := range s.Transactions {
		row = sheet.AddRow()
		row.AddCell().SetValue(txn.TransactionDate.Format(dateFormat))
		row.AddCell().SetValue(txn.CaptureDate.Format(dateFormat))
		row.AddCell().SetValue(txn.Amount.StringFixed(2))
		row.AddCell().SetValue(txn.Description)
	}

	return file.Write(w)
}
