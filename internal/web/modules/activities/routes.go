package activities

import (
	"net/http"

	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Activities, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.Activities+"/{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.ActivityPattern, h.handleDetail)
}
