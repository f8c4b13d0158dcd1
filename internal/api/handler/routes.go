package handler

import (
	"net/http"

	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe"
	"github.com/rbezerra/corretora-financeiro-api/internal/api/handler/router"
	"github.com/rbezerra/corretora-financeiro-api/internal/scheduler"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/authenticating"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/financeiro"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/metas"
	"github.com/rbezerra/corretora-financeiro-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Financeiro expõe as agregações do dashboard financeiro
func Financeiro(service financeiro.Financeiro, integrator frappe.FrappeIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/financeiro/evolucao-vendas",
			Method:      http.MethodGet,
			Handler:     GetEvolucaoVendas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/financeiro/metas-mensais",
			Method:      http.MethodGet,
			Handler:     GetMetasMensais(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/financeiro/metas-por-categoria",
			Method:      http.MethodGet,
			Handler:     GetMetasPorCategoria(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/financeiro/metas-por-categoria-corretor",
			Method:      http.MethodGet,
			Handler:     GetMetasPorCategoriaCorretor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/financeiro/ranking-corretores",
			Method:      http.MethodGet,
			Handler:     GetRankingCorretores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/financeiro/vendas-por-categoria",
			Method:      http.MethodGet,
			Handler:     GetVendasPorCategoria(integrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/financeiro/vendas-por-categoria-corretor",
			Method:      http.MethodGet,
			Handler:     GetVendasPorCategoriaCorretor(integrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/financeiro/snapshots",
			Method:      http.MethodGet,
			Handler:     GetSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Metas expõe o cadastro de metas
func Metas(service metas.Metas) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metas",
			Method:      http.MethodGet,
			Handler:     ListMetas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metas",
			Method:      http.MethodPost,
			Handler:     CreateMeta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/metas/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMeta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/metas/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMeta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}

func Corretores(integrator frappe.FrappeIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/corretores",
			Method:      http.MethodGet,
			Handler:     ListCorretores(integrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(syncService *scheduler.SnapshotSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/snapshots/run",
			Method:      http.MethodPost,
			Handler:     RunSnapshotSync(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/snapshots/status",
			Method:      http.MethodGet,
			Handler:     GetSnapshotSyncStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}
