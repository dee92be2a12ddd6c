package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// home greets the session owner by name, or a guest.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	sc, _ := utils.GetSessionContext(r.Context())

	message := msgWelcome
	if identity, ok := h.services.SessionGateway.CurrentIdentity(sc); ok && identity.Name != "" {
		message = fmt.Sprintf(msgWelcomeNamedFmt, identity.Name)
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}
