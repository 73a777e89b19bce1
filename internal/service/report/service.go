package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/attendance"
	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/report"
)

type ReportingServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
}

func NewReportingService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) report.ReportingService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportingServiceImpl{
		attendanceRepo: attendanceRepo,
		loc:            loc,
	}
}

var reportHeaders = []string{
	"Employee", "Date", "Clock In", "Clock Out", "Hours Worked", "Late", "Notes",
}

// GenerateAttendanceReport implements report.ReportingService.
func (r *ReportingServiceImpl) GenerateAttendanceReport(ctx context.Context, start, end time.Time) ([]byte, error) {
	records, err := r.attendanceRepo.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}
	if len(records) == 0 {
		return nil, attendance.ErrNoAttendanceRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Attendance"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	title := fmt.Sprintf("Attendance %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	f.SetCellValue(sheetName, "A1", title)
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 14,
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	}
	f.MergeCell(sheetName, "A1", "G1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"DDDDDD"},
			Pattern: 1,
		},
	})
	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheetName, cell, header)
		if err == nil {
			f.SetCellStyle(sheetName, cell, cell, headerStyle)
		}
	}

	for i, record := range records {
		row := i + 4

		name := record.EmployeeID
		if record.EmployeeName != nil {
			name = *record.EmployeeName
		}

		values := []any{
			name,
			record.AttendanceDate.Format("2006-01-02"),
			formatClockEvent(record.ClockInAt, r.loc),
			formatClockEvent(record.ClockOutAt, r.loc),
			record.HoursWorked.InexactFloat64(),
			record.IsLate(r.loc),
			derefOrEmpty(record.Notes),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "D", 14)
	f.SetColWidth(sheetName, "G", "G", 40)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func formatClockEvent(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format("15:04")
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
