package contact

import (
	"net/http"

	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleSubmit)
}
