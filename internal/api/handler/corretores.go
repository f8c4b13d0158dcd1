package handler

import (
	"net/http"

	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe"
	"github.com/rbezerra/corretora-financeiro-api/pkg/apiErrors"
	"github.com/rbezerra/corretora-financeiro-api/pkg/log"
)

func ListCorretores(integrator frappe.FrappeIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		corretores, err := integrator.ListCorretores(r.Context())
		if err != nil {
			logger.WithError(err).Error("corretores: erro ao listar corretores")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o backend de recursos", nil)
			return
		}

		writeJSON(w, r, corretores)
	})
}
