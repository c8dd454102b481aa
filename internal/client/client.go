package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is the thin bearer-token JSON client for the booking API. Every
// data operation in the admin client goes through it.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Op: op, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return &AuthError{Message: apiErr.Error}
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &NetworkError{Op: op, Err: err}
		}
	}

	return nil
}

// Login exchanges credentials for a token and installs it on the client.
func (c *Client) Login(ctx context.Context, username, password, role string) (string, string, error) {
	var resp loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/api/login", loginRequest{
		Username: username,
		Password: password,
		Role:     role,
	}, &resp)
	if err != nil {
		return "", "", err
	}

	c.token = resp.Token
	return resp.Token, resp.Role, nil
}

func (c *Client) ListCoaches(ctx context.Context) ([]Coach, error) {
	var coaches []Coach
	if err := c.do(ctx, "list coaches", http.MethodGet, "/api/coaches", nil, &coaches); err != nil {
		return nil, err
	}
	return coaches, nil
}

func (c *Client) CreateCoach(ctx context.Context, p CoachPayload) error {
	return c.do(ctx, "create coach", http.MethodPost, "/api/coaches", p, nil)
}

func (c *Client) UpdateCoach(ctx context.Context, id int, p CoachPayload) error {
	return c.do(ctx, "update coach", http.MethodPut, "/api/coaches/"+strconv.Itoa(id), p, nil)
}

func (c *Client) DeleteCoach(ctx context.Context, id int) error {
	return c.do(ctx, "delete coach", http.MethodDelete, "/api/coaches/"+strconv.Itoa(id), nil, nil)
}

// ListBookings fetches bookings, filtered at the query boundary by coach
// and/or date when set.
func (c *Client) ListBookings(ctx context.Context, q BookingQuery) ([]Booking, error) {
	params := url.Values{}
	if q.CoachID != 0 {
		params.Set("coach_id", strconv.Itoa(q.CoachID))
	}
	if q.Date != "" {
		params.Set("date", q.Date)
	}

	path := "/api/bookings"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var bookings []Booking
	if err := c.do(ctx, "list bookings", http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, p BookingPayload) error {
	return c.do(ctx, "create booking", http.MethodPost, "/api/bookings", p, nil)
}

func (c *Client) UpdateBooking(ctx context.Context, id int, p BookingPayload) error {
	return c.do(ctx, "update booking", http.MethodPut, "/api/bookings/"+strconv.Itoa(id), p, nil)
}

func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	return c.do(ctx, "delete booking", http.MethodDelete, "/api/bookings/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) GetProfile(ctx context.Context) (*Coach, error) {
	var coach Coach
	if err := c.do(ctx, "get profile", http.MethodGet, "/api/coach/profile", nil, &coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

func (c *Client) UpdateProfile(ctx context.Context, p ProfilePayload) error {
	return c.do(ctx, "update profile", http.MethodPut, "/api/coach/profile", p, nil)
}

// Upload posts a multipart file and returns the URL the server stored it
// under.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", &NetworkError{Op: "upload", Err: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", &NetworkError{Op: "upload", Err: err}
	}
	if err := w.Close(); err != nil {
		return "", &NetworkError{Op: "upload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", &NetworkError{Op: "upload", Err: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Op: "upload", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized {
			return "", &AuthError{Message: resp.Status}
		}
		return "", &APIError{Status: resp.StatusCode, Message: resp.Status}
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", &NetworkError{Op: "upload", Err: err}
	}
	if uploaded.FileURL == "" {
		return "", &NetworkError{Op: "upload", Err: fmt.Errorf("empty file_url in response")}
	}

	return uploaded.FileURL, nil
}
