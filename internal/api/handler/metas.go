package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	frappedomain "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/domain"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/metas"
	"github.com/rbezerra/corretora-financeiro-api/pkg/apiErrors"
	"github.com/rbezerra/corretora-financeiro-api/pkg/log"
)

// writeMetaError traduz os erros do cadastro de metas para a resposta da API
func writeMetaError(w http.ResponseWriter, err error) {
	var metaErr *metas.MetaError
	if errors.As(err, &metaErr) {
		apiErrors.WriteError(w, metaErr.Code, metaErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o backend de recursos", nil)
}

func ListMetas(service metas.Metas) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		items, err := service.ListMetas(r.Context())
		if err != nil {
			logger.WithError(err).Error("metas: erro ao listar metas")
			writeMetaError(w, err)
			return
		}

		writeJSON(w, r, items)
	})
}

func CreateMeta(service metas.Metas) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var meta frappedomain.Meta
		if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateMeta(r.Context(), &meta)
		if err != nil {
			logger.WithError(err).Warn("metas: erro ao criar meta")
			writeMetaError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("metas: erro ao codificar resposta")
		}
	})
}

func UpdateMeta(service metas.Metas) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var meta frappedomain.Meta
		if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		meta.Name = name

		if err := service.UpdateMeta(r.Context(), &meta); err != nil {
			logger.WithError(err).WithField("meta", name).Warn("metas: erro ao atualizar meta")
			writeMetaError(w, err)
			return
		}

		writeJSON(w, r, meta)
	})
}

func DeleteMeta(service metas.Metas) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteMeta(r.Context(), name); err != nil {
			logger.WithError(err).WithField("meta", name).Warn("metas: erro ao remover meta")
			writeMetaError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
