// internal/handler/experiment.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/joao-vitor-prudente/personia/internal/middleware"
	"github.com/joao-vitor-prudente/personia/internal/service"
)

type ExperimentHandler struct {
	experimentService *service.ExperimentService
}

func NewExperimentHandler(experimentService *service.ExperimentService) *ExperimentHandler {
	return &ExperimentHandler{experimentService: experimentService}
}

type CreateExperimentResponse struct {
	BaseResponse
	WorkflowID string `json:"workflow_id"`
}

// Create accepts the experiment and returns the workflow handle; the
// experiment itself materializes asynchronously once provisioning runs.
func (h *ExperimentHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var input service.CreateExperimentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	workflowID, err := h.experimentService.Create(r.Context(), identity, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, CreateExperimentResponse{
		BaseResponse: BaseResponse{Ok: true},
		WorkflowID:   workflowID,
	})
}

func (h *ExperimentHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid experiment id")
		return
	}

	experiment, err := h.experimentService.Get(r.Context(), identity, id)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, experiment)
}

func (h *ExperimentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid experiment id")
		return
	}

	var input service.EditExperimentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.experimentService.Edit(r.Context(), identity, id, input); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *ExperimentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid experiment id")
		return
	}

	if err := h.experimentService.Delete(r.Context(), identity, id); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// ListByProject lists a project's experiments with personas and assistant
// provisioning state resolved.
func (h *ExperimentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	projectID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	experiments, err := h.experimentService.ListByProject(r.Context(), identity, projectID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, experiments)
}
