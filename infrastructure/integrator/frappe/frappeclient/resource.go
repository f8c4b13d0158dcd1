package frappeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// resourceEnvelope é o envelope padrão das respostas de /api/resource
type resourceEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// GetList busca todos os documentos de um doctype com a lista de campos
// informada. A paginação é desabilitada (limit_page_length=0); as coleções
// deste sistema são pequenas.
func (c *FrappeClient) GetList(ctx context.Context, doctype string, fields []string) (json.RawMessage, error) {
	endpoint, err := c.resourceURL(doctype, "")
	if err != nil {
		return nil, err
	}

	fieldsJSON, err := jsonCodec.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a lista de campos")
	}

	query := endpoint.Query()
	query.Set("fields", string(fieldsJSON))
	query.Set("limit_page_length", "0")
	endpoint.RawQuery = query.Encode()

	return c.doResource(ctx, http.MethodGet, endpoint.String(), nil)
}

// Insert cria um documento novo no doctype
func (c *FrappeClient) Insert(ctx context.Context, doctype string, doc any) (json.RawMessage, error) {
	endpoint, err := c.resourceURL(doctype, "")
	if err != nil {
		return nil, err
	}

	return c.doResource(ctx, http.MethodPost, endpoint.String(), doc)
}

// Update atualiza um documento existente pelo name
func (c *FrappeClient) Update(ctx context.Context, doctype string, name string, doc any) (json.RawMessage, error) {
	endpoint, err := c.resourceURL(doctype, name)
	if err != nil {
		return nil, err
	}

	return c.doResource(ctx, http.MethodPut, endpoint.String(), doc)
}

// Delete remove um documento pelo name, via RPC frappe.client.delete
// (o mesmo caminho que o frontend original usa para exclusão)
func (c *FrappeClient) Delete(ctx context.Context, doctype string, name string) error {
	_, err := c.CallMethod(ctx, "frappe.client.delete", map[string]string{
		"doctype": doctype,
		"name":    name,
	})
	return err
}

func (c *FrappeClient) resourceURL(doctype, name string) (*url.URL, error) {
	endpoint, err := url.Parse(c.config.Frappe.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base do Frappe")
	}

	endpoint.Path = path.Join(endpoint.Path, "/api/resource/", doctype)
	if name != "" {
		endpoint.Path = path.Join(endpoint.Path, name)
	}

	return endpoint, nil
}

func (c *FrappeClient) doResource(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := jsonCodec.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	c.authorize(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var envelope resourceEnvelope
	if err := jsonCodec.Unmarshal(respBody, &envelope); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o envelope da resposta")
	}

	return envelope.Data, nil
}
