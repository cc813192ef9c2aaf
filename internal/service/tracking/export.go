package tracking

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// csvHeader is the Thai column header the exported file has always
// carried; spreadsheet apps rely on the BOM to detect UTF-8.
const (
	csvBOM    = "\uFEFF"
	csvHeader = "วันที่,น้ำหนัก (kg),รอบอก (cm),รอบเอว (cm)"
	crlf      = "\r\n"
)

var xlsxHeader = []interface{}{
	"วันที่", "น้ำหนัก (kg)", "รอบอก (cm)", "รอบเอว (cm)", "ความดันโลหิต", "น้ำตาลในเลือด (mg/dL)",
}

// ExportCSV renders the user's full history as a UTF-8 CSV with a
// leading BOM and CRLF line endings. Absent optional fields become
// empty cells.
func (s *Service) ExportCSV(ctx context.Context, username string) ([]byte, error) {
	records, err := s.trackingRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(csvBOM)
	buf.WriteString(csvHeader)
	buf.WriteString(crlf)

	for _, r := range records {
		buf.WriteString(r.Date)
		buf.WriteByte(',')
		buf.WriteString(formatNumber(r.Weight))
		buf.WriteByte(',')
		buf.WriteString(formatOptional(r.Chest))
		buf.WriteByte(',')
		buf.WriteString(formatOptional(r.Waist))
		buf.WriteString(crlf)
	}

	return buf.Bytes(), nil
}

// ExportXLSX renders the same history as a spreadsheet, including the
// vitals columns the CSV format predates.
func (s *Service) ExportXLSX(ctx context.Context, username string) ([]byte, error) {
	records, err := s.trackingRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range records {
		row := []interface{}{r.Date, r.Weight, cellValue(r.Chest), cellValue(r.Waist), "", cellValue(r.Glucose)}
		if r.BloodPressure != nil {
			row[4] = *r.BloodPressure
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}

func cellValue(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
