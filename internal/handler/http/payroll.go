package http

import (
	"net/http"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/handler/http/response"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/service/payroll"
)

type PayrollHandler interface {
	GetDraft(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetDraft implements PayrollHandler.
func (p *PayrollHandlerImpl) GetDraft(w http.ResponseWriter, r *http.Request) {
	resp, err := p.payrollService.Draft(r.Context(), summaryFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
