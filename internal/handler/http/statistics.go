package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
	"github.com/pulsehr/attendance-backend-go/internal/handler/http/response"
)

type StatisticsHandler interface {
	GetEmployeeStatistics(w http.ResponseWriter, r *http.Request)
	GetGlobalStatistics(w http.ResponseWriter, r *http.Request)
	GetEmployeeHistory(w http.ResponseWriter, r *http.Request)
}

type StatisticsHandlerImpl struct {
	statisticsService statistics.StatisticsService
}

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &StatisticsHandlerImpl{statisticsService: statisticsService}
}

// GetEmployeeStatistics implements StatisticsHandler.
func (h *StatisticsHandlerImpl) GetEmployeeStatistics(w http.ResponseWriter, r *http.Request) {
	statsReq := statistics.EmployeeStatisticsRequest{
		EmployeeID:    chi.URLParam(r, "id"),
		PeriodKind:    r.URL.Query().Get("period"),
		ReferenceDate: r.URL.Query().Get("date"),
	}
	if statsReq.PeriodKind == "" {
		statsReq.PeriodKind = string(statistics.PeriodMonth)
	}

	stats, err := h.statisticsService.GetEmployeeStatistics(r.Context(), statsReq)
	if err != nil {
		slog.Error("GetEmployeeStatistics service error", "error", err, "employee_id", statsReq.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetGlobalStatistics implements StatisticsHandler.
func (h *StatisticsHandlerImpl) GetGlobalStatistics(w http.ResponseWriter, r *http.Request) {
	statsReq := statistics.GlobalStatisticsRequest{
		ReferenceDate: r.URL.Query().Get("date"),
	}

	stats, err := h.statisticsService.GetGlobalStatistics(r.Context(), statsReq)
	if err != nil {
		slog.Error("GetGlobalStatistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetEmployeeHistory implements StatisticsHandler.
func (h *StatisticsHandlerImpl) GetEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	kind := r.URL.Query().Get("period")
	if kind == "" {
		kind = string(statistics.PeriodMonth)
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.statisticsService.GetEmployeeHistory(r.Context(), employeeID, statistics.PeriodKind(kind), limit)
	if err != nil {
		slog.Error("GetEmployeeHistory service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}
