package frappeclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
)

// methodEnvelope é o envelope padrão das respostas de /api/method
type methodEnvelope struct {
	Message json.RawMessage `json:"message"`
}

// CallMethod executa um método RPC do backend (/api/method/{method}) com
// parâmetros de query opcionais e retorna o campo "message" da resposta.
func (c *FrappeClient) CallMethod(ctx context.Context, method string, params map[string]string) (json.RawMessage, error) {
	endpoint, err := url.Parse(c.config.Frappe.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base do Frappe")
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/method/", method)

	query := endpoint.Query()
	for key, value := range params {
		if value != "" {
			query.Set(key, value)
		}
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var envelope methodEnvelope
	if err := jsonCodec.Unmarshal(respBody, &envelope); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o envelope da resposta")
	}

	return envelope.Message, nil
}
