package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/razasalaar/workshop-manager/internal/auth"
	"github.com/razasalaar/workshop-manager/internal/pkg/httpx"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/workshop"
	"github.com/razasalaar/workshop-manager/internal/workshop/dto"
)

type WorkshopHandler struct {
	uc     workshop.UseCase
	logger logger.ZapLogger
}

func NewWorkshopHandler(uc workshop.UseCase, log logger.ZapLogger) *WorkshopHandler {
	return &WorkshopHandler{
		uc:     uc,
		logger: log,
	}
}

type workshopRequest struct {
	WorkshopName string `json:"workshop_name"`
}

func (h *WorkshopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req workshopRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	ws, err := h.uc.CreateWorkshop(r.Context(), &dto.CreateWorkshopInput{
		UserID:       auth.UserID(r.Context()),
		WorkshopName: req.WorkshopName,
	})
	if err != nil {
		h.logger.Error("failed to create workshop", zap.Error(err))
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, ws)
}

func (h *WorkshopHandler) List(w http.ResponseWriter, r *http.Request) {
	workshops, err := h.uc.ListWorkshops(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("failed to list workshops", zap.Error(err))
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, workshops)
}

func (h *WorkshopHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req workshopRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	ws, err := h.uc.RenameWorkshop(r.Context(), &dto.RenameWorkshopInput{
		ID:           chi.URLParam(r, "id"),
		UserID:       auth.UserID(r.Context()),
		WorkshopName: req.WorkshopName,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ws)
}

func (h *WorkshopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.uc.DeleteWorkshop(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
