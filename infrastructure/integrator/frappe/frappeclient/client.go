package frappeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rbezerra/corretora-financeiro-api/internal/config"
)

// Client abstrai a API de recursos do Frappe: coleções de documentos em
// /api/resource/{doctype} e métodos RPC em /api/method/{method}.
type Client interface {
	GetList(ctx context.Context, doctype string, fields []string) (json.RawMessage, error)
	Insert(ctx context.Context, doctype string, doc any) (json.RawMessage, error)
	Update(ctx context.Context, doctype string, name string, doc any) (json.RawMessage, error)
	Delete(ctx context.Context, doctype string, name string) error
	CallMethod(ctx context.Context, method string, params map[string]string) (json.RawMessage, error)
}

type FrappeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &FrappeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// authorize adiciona o cabeçalho de autenticação por token do Frappe
func (c *FrappeClient) authorize(req *http.Request) {
	req.Header.Set("Authorization", "token "+c.config.Frappe.APIKey+":"+c.config.Frappe.APISecret)
	req.Header.Set("Accept", "application/json")
}
