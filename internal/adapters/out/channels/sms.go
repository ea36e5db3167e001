package channels

import (
	"context"
	"net/http"
)

type SMSClient struct {
	client
	sender string
}

func NewSMSClient(endpoint, apiKey, sender string, httpClient *http.Client) *SMSClient {
	return &SMSClient{client: newClient("sms", endpoint, apiKey, httpClient), sender: sender}
}

type smsRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Text string `json:"text"`
}

func (c *SMSClient) Send(ctx context.Context, phone, text string) error {
	return c.post(ctx, smsRequest{From: c.sender, To: phone, Text: text}, nil)
}
