package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/domain/bank"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/handler/http/response"
)

type BankHandler interface {
	GetLedger(w http.ResponseWriter, r *http.Request)
	ApplyHours(w http.ResponseWriter, r *http.Request)
	AnnulEntry(w http.ResponseWriter, r *http.Request)
}

type bankHandlerImpl struct {
	bankService bank.Service
}

func NewBankHandler(bankService bank.Service) BankHandler {
	return &bankHandlerImpl{
		bankService: bankService,
	}
}

// GetLedger implements BankHandler.
func (h *bankHandlerImpl) GetLedger(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.bankService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ApplyHours implements BankHandler. Applications are processed in
// order; on failure the earlier ones stay applied and the response
// reports the error.
func (h *bankHandlerImpl) ApplyHours(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req bank.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.bankService.ApplyToWeeks(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Bank hours applied", result)
}

// AnnulEntry implements BankHandler.
func (h *bankHandlerImpl) AnnulEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")

	result, err := h.bankService.Annul(r.Context(), entryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Bank entry annulled", result)
}
