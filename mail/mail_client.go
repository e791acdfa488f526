package mail

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
)

// BookingConfirmation carries everything the confirmation template needs.
type BookingConfirmation struct {
	UserEmail  string    `json:"userEmail"`
	UserName   string    `json:"userName"`
	CourtName  string    `json:"courtName"`
	CourtSport string    `json:"courtSport"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`
}

type message struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html"`
}

type MailClient interface {
	SendBookingConfirmation(ctx context.Context, data BookingConfirmation) error
}

// Client talks to the transactional mail gateway's HTTP API.
type Client struct {
	baseURL     string
	apiKey      string
	fromAddress string
	client      *http.Client
}

func NewClient(baseURL, apiKey, fromAddress string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		fromAddress: fromAddress,
		client:      client,
	}
}

func (c *Client) SendBookingConfirmation(ctx context.Context, data BookingConfirmation) error {
	if len(strings.TrimSpace(data.UserEmail)) == 0 {
		return errors.New("recipient email cannot be empty")
	}

	msgURL, err := c.getURL("messages")

	if err != nil {
		return err
	}

	msg := message{
		From:     fmt.Sprintf("SportCenter Reservations <%v>", c.fromAddress),
		To:       data.UserEmail,
		Subject:  fmt.Sprintf("Booking confirmation - %v", data.CourtName),
		HTMLBody: confirmationBody(data),
	}

	body, err := json.Marshal(msg)

	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", msgURL, bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	return nil
}

func confirmationBody(data BookingConfirmation) string {
	day := data.StartTime.Format("Monday, January 2, 2006")
	from := data.StartTime.Format("15:04")
	to := data.EndTime.Format("15:04")

	return fmt.Sprintf(`<html><body>
<h1>Booking confirmed!</h1>
<p>Hi <strong>%v</strong>,</p>
<p>Your reservation details:</p>
<ul>
<li>Court: %v</li>
<li>Sport: %v</li>
<li>Date: %v</li>
<li>Time: %v - %v</li>
</ul>
<p><strong>Total: $%.2f</strong></p>
<p>Please arrive 10 minutes before your time slot.</p>
<p>SportCenter team</p>
</body></html>`,
		data.UserName,
		data.CourtName,
		data.CourtSport,
		day,
		from,
		to,
		data.TotalPrice,
	)
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
