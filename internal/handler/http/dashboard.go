package http

import (
	"net/http"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/handler/http/response"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/service/dashboard"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler.
func (d *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := d.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
