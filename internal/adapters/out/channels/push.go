package channels

import (
	"context"
	"net/http"

	"freshdispatch/internal/core/ports"
)

// PushClient sends push notifications through the provider's batch endpoint.
type PushClient struct {
	client
}

func NewPushClient(endpoint, apiKey string, httpClient *http.Client) *PushClient {
	return &PushClient{client: newClient("push", endpoint, apiKey, httpClient)}
}

type pushRequest struct {
	Tokens []string       `json:"tokens"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Data   map[string]any `json:"data,omitempty"`
}

type pushResponse struct {
	Delivered     int      `json:"delivered"`
	InvalidTokens []string `json:"invalidTokens"`
}

func (c *PushClient) Send(
	ctx context.Context,
	tokens []string,
	title, body string,
	data map[string]any,
) (ports.PushReport, error) {
	var resp pushResponse
	if err := c.post(ctx, pushRequest{Tokens: tokens, Title: title, Body: body, Data: data}, &resp); err != nil {
		return ports.PushReport{}, err
	}
	return ports.PushReport{Delivered: resp.Delivered, InvalidTokens: resp.InvalidTokens}, nil
}
