package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/project"
	"github.com/epitome-prod/callsheet-backend-go/internal/handler/http/middleware"
	"github.com/epitome-prod/callsheet-backend-go/internal/handler/http/response"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/sse"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Progress(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
	hub            *sse.Hub
}

func NewProjectHandler(projectService project.ProjectService, hub *sse.Hub) ProjectHandler {
	return &ProjectHandlerImpl{
		projectService: projectService,
		hub:            hub,
	}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = middleware.UserID(r)

	resp, err := h.projectService.CreateProject(r.Context(), req)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", resp)
}

// GetByID implements ProjectHandler.
func (h *ProjectHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectID")

	resp, err := h.projectService.GetProject(r.Context(), middleware.UserID(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.projectService.ListProjects(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req project.UpdateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "projectID")
	req.UserID = middleware.UserID(r)

	resp, err := h.projectService.UpdateProject(r.Context(), req)
	if err != nil {
		slog.Error("Update project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", resp)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectID")

	if err := h.projectService.DeleteProject(r.Context(), middleware.UserID(r), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}

// Generate implements ProjectHandler.
func (h *ProjectHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req project.GenerateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = middleware.UserID(r)

	if err := req.Validate(); err != nil {
		slog.Error("Generate validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp, err := h.projectService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Generate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Project generated successfully", "project_id", resp.Project.ID)
	response.Created(w, "Call sheets generated successfully", resp)
}

// Progress implements ProjectHandler. Streams generation progress events to
// the authenticated user over SSE until the client disconnects.
func (h *ProjectHandlerImpl) Progress(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming unsupported")
		return
	}

	userID := middleware.UserID(r)
	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: progress\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
