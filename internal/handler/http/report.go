package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/domain/report"
	"github.com/Oksman-1/Employee-Attendance-System/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	DownloadAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportingService report.ReportingService
}

func NewReportHandler(reportingService report.ReportingService) ReportHandler {
	return &reportHandlerImpl{
		reportingService: reportingService,
	}
}

// DownloadAttendanceReport implements ReportHandler
func (h *reportHandlerImpl) DownloadAttendanceReport(w http.ResponseWriter, r *http.Request) {
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	if startParam == "" || endParam == "" {
		response.BadRequest(w, "Query parameters 'start' and 'end' are required", nil)
		return
	}

	start, err := time.Parse("2006-01-02", startParam)
	if err != nil {
		response.BadRequest(w, "Query parameter 'start' must be a date in YYYY-MM-DD format", nil)
		return
	}
	end, err := time.Parse("2006-01-02", endParam)
	if err != nil {
		response.BadRequest(w, "Query parameter 'end' must be a date in YYYY-MM-DD format", nil)
		return
	}
	if end.Before(start) {
		response.BadRequest(w, "Query parameter 'end' must not be before 'start'", nil)
		return
	}

	content, err := h.reportingService.GenerateAttendanceReport(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", startParam, endParam)
	response.Attachment(w, filename, xlsxContentType, content)
}
