package channels

import (
	"context"
	"net/http"
)

type EmailClient struct {
	client
	from string
}

func NewEmailClient(endpoint, apiKey, from string, httpClient *http.Client) *EmailClient {
	return &EmailClient{client: newClient("email", endpoint, apiKey, httpClient), from: from}
}

type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (c *EmailClient) Send(ctx context.Context, to, subject, body string) error {
	return c.post(ctx, emailRequest{From: c.from, To: to, Subject: subject, Text: body}, nil)
}
