package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/callsheet"
	"github.com/epitome-prod/callsheet-backend-go/internal/handler/http/middleware"
	"github.com/epitome-prod/callsheet-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CallSheetHandler interface {
	Synthesize(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetDaySheet(w http.ResponseWriter, r *http.Request)
	ListByProject(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	ListRSVPs(w http.ResponseWriter, r *http.Request)
	ConfirmRSVP(w http.ResponseWriter, r *http.Request)
}

type CallSheetHandlerImpl struct {
	callSheetService callsheet.CallSheetService
}

func NewCallSheetHandler(callSheetService callsheet.CallSheetService) CallSheetHandler {
	return &CallSheetHandlerImpl{callSheetService: callSheetService}
}

// Synthesize implements CallSheetHandler. Runs the synthesis pipeline on a
// raw extraction snapshot without persisting anything.
func (h *CallSheetHandlerImpl) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req callsheet.SynthesizeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Synthesize decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	response.Success(w, h.callSheetService.SynthesizeDay(req))
}

// GetByID implements CallSheetHandler.
func (h *CallSheetHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "callSheetID")

	resp, err := h.callSheetService.GetCallSheet(r.Context(), middleware.UserID(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetDaySheet implements CallSheetHandler.
func (h *CallSheetHandlerImpl) GetDaySheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "callSheetID")

	resp, err := h.callSheetService.GetDaySheet(r.Context(), middleware.UserID(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListByProject implements CallSheetHandler.
func (h *CallSheetHandlerImpl) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	resp, err := h.callSheetService.ListByProject(r.Context(), middleware.UserID(r), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements CallSheetHandler.
func (h *CallSheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req callsheet.UpdateCallSheetRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update call sheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "callSheetID")

	resp, err := h.callSheetService.UpdateCallSheet(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Update call sheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Call sheet updated successfully", resp)
}

// Send implements CallSheetHandler.
func (h *CallSheetHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "callSheetID")

	resp, err := h.callSheetService.SendCallSheet(r.Context(), middleware.UserID(r), id)
	if err != nil {
		slog.Error("Send call sheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Call sheet sent", "call_sheet_id", resp.CallSheetID, "sent_count", resp.SentCount)
	response.SuccessWithMessage(w, "Call sheet sent successfully", resp)
}

// ListRSVPs implements CallSheetHandler.
func (h *CallSheetHandlerImpl) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "callSheetID")

	resp, err := h.callSheetService.ListRSVPs(r.Context(), middleware.UserID(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ConfirmRSVP implements CallSheetHandler. Public endpoint reached from the
// confirmation link in the call sheet email.
func (h *CallSheetHandlerImpl) ConfirmRSVP(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Confirm RSVP decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.callSheetService.ConfirmRSVP(r.Context(), token, req.Confirmed); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "RSVP recorded", nil)
}
