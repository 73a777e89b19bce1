package report

import (
	"context"
	"time"
)

// ReportingService builds the attendance range report artifact consumed by
// the HTTP layer. It reads through the attendance repository only.
type ReportingService interface {
	// GenerateAttendanceReport renders all attendance records in
	// [start, end] inclusive as an XLSX workbook. An empty range is
	// attendance.ErrNoAttendanceRecords.
	GenerateAttendanceReport(ctx context.Context, start, end time.Time) ([]byte, error)
}
