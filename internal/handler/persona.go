// internal/handler/persona.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/joao-vitor-prudente/personia/internal/middleware"
	"github.com/joao-vitor-prudente/personia/internal/service"
)

type PersonaHandler struct {
	personaService *service.PersonaService
}

func NewPersonaHandler(personaService *service.PersonaService) *PersonaHandler {
	return &PersonaHandler{personaService: personaService}
}

func (h *PersonaHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var input service.PersonaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	persona, err := h.personaService.Create(r.Context(), identity, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, persona)
}

func (h *PersonaHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	search := r.URL.Query().Get("search")
	sorting := r.URL.Query().Get("sorting")

	personas, err := h.personaService.List(r.Context(), identity, search, sorting)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, personas)
}

func (h *PersonaHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid persona id")
		return
	}

	persona, err := h.personaService.Get(r.Context(), identity, id)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, persona)
}

func (h *PersonaHandler) Edit(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid persona id")
		return
	}

	var input service.PersonaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.personaService.Edit(r.Context(), identity, id, input); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *PersonaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid persona id")
		return
	}

	if err := h.personaService.Delete(r.Context(), identity, id); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
