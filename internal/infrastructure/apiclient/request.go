package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

const maxResponseBytes = 1 << 20

// request es el helper HTTP genérico: JSON in/out, Bearer token si existe,
// error HTTP genérico para status no 2xx y sobre con success=false como KindRejected.
func request[T any](ctx context.Context, c *Client, method, endpoint string, body interface{}) (*dto.APIResponse[T], error) {
	resp, err := c.do(ctx, method, endpoint, body)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("API request failed")
		return nil, err
	}

	out, err := decodeEnvelope[T](resp)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("API request failed")
		return nil, err
	}
	return out, nil
}

type rawResponse struct {
	status int
	body   []byte
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}) (*rawResponse, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, domain.NewError(domain.KindUnknown, "serializar body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+endpoint, reader)
	if err != nil {
		return nil, domain.NewError(domain.KindUnknown, "crear HTTP request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, domain.NewError(domain.KindCanceled, "operación cancelada", ctx.Err())
		}
		return nil, domain.NewError(domain.KindNetwork, fmt.Sprintf("llamada HTTP fallida: %v", err), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domain.NewError(domain.KindNetwork, "leer respuesta", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.HTTPError(resp.StatusCode)
	}
	return &rawResponse{status: resp.StatusCode, body: raw}, nil
}

// token lee el token del almacenamiento; un fallo de lectura equivale a no tener token.
func (c *Client) token(ctx context.Context) string {
	if c.storage == nil {
		return ""
	}
	tok, ok, err := c.storage.Get(ctx, repository.KeyToken)
	if err != nil {
		c.log.Warn().Err(err).Msg("no se pudo leer el token almacenado")
		return ""
	}
	if !ok {
		return ""
	}
	return tok
}

func decodeEnvelope[T any](r *rawResponse) (*dto.APIResponse[T], error) {
	if len(bytes.TrimSpace(r.body)) == 0 {
		// 204 o cuerpo vacío: éxito sin datos
		return &dto.APIResponse[T]{Success: true}, nil
	}
	var env dto.APIResponse[T]
	if err := json.Unmarshal(r.body, &env); err != nil {
		return nil, domain.NewError(domain.KindDecode, "respuesta no válida del servidor", err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "el servidor rechazó la operación"
		}
		return nil, domain.NewError(domain.KindRejected, msg, nil)
	}
	return &env, nil
}

func pathEscape(id string) string { return url.PathEscape(id) }
