package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
)

var _ ports.Completer = (*Client)(nil)

// Client es un cliente HTTP mínimo para un endpoint chat-completions
// compatible con OpenAI. Soporta respuestas JSON simples y streaming SSE.
// Nunca reintenta por su cuenta: esa decisión es del caller.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Proxy   string
	// HTTPClient permite inyectar un cliente en tests. Si es nil se
	// construye uno con el proxy configurado.
	HTTPClient *http.Client
}

func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		transport := &http.Transport{}
		if opts.Proxy != "" {
			proxyURL, err := url.Parse(opts.Proxy)
			if err != nil {
				return nil, fmt.Errorf("proxy URL inválida: %w", err)
			}
			transport.Proxy = http.ProxyURL(proxyURL)
		}
		httpClient = &http.Client{Transport: transport}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		timeout:    opts.Timeout,
		httpClient: httpClient,
	}, nil
}

// Complete ejecuta la llamada a {baseURL}/chat/completions. Si req.Stream es
// true el body se consume como SSE y cada delta se emite por onEvent a medida
// que llega, además de acumularse para el resultado final.
func (c *Client) Complete(ctx context.Context, req models.CompletionRequest, onEvent ports.StreamCallback) (*models.CompletionResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error al codificar el request: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error al construir el request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if req.Stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.mapRequestError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, domainerrors.NewAPIError(resp.StatusCode, resp.Status, strings.TrimSpace(string(body)))
	}

	if req.Stream {
		response, err := readStream(resp.Body, onEvent)
		if err != nil {
			return nil, c.mapRequestError(err)
		}
		return response, nil
	}

	return decodeResponse(resp.Body)
}

// mapRequestError traduce errores de red al taxónomo del dominio: deadline
// excedido es TimeoutError, el resto de las fallas de conexión/DNS son
// TransportError con el host inalcanzable.
func (c *Client) mapRequestError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.NewTimeoutError(c.timeout)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return domainerrors.NewTimeoutError(c.timeout)
	}
	return domainerrors.NewTransportError(c.host(), err)
}

func (c *Client) host() string {
	parsed, err := url.Parse(c.baseURL)
	if err != nil || parsed.Host == "" {
		return c.baseURL
	}
	return parsed.Host
}

type chatCompletionResponse struct {
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role             string `json:"role"`
			Content          string `json:"content"`
			ReasoningContent string `json:"reasoning_content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage models.Usage `json:"usage"`
}

func decodeResponse(body io.Reader) (*models.CompletionResponse, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("error al leer la respuesta: %w", err)
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, domainerrors.NewAPIError(0, "respuesta malformada", strings.TrimSpace(string(raw)))
	}

	if len(parsed.Choices) == 0 {
		return nil, domainerrors.NewAPIError(0, "no choices", strings.TrimSpace(string(raw)))
	}

	choices := make([]models.CompletionChoice, 0, len(parsed.Choices))
	for _, choice := range parsed.Choices {
		choices = append(choices, models.CompletionChoice{
			Index:            choice.Index,
			Role:             choice.Message.Role,
			Content:          choice.Message.Content,
			ReasoningContent: choice.Message.ReasoningContent,
			FinishReason:     choice.FinishReason,
		})
	}

	return &models.CompletionResponse{Choices: choices, Usage: parsed.Usage}, nil
}
