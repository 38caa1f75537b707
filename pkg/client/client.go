package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// APIError is a failed envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// ErrNotSignedIn is returned by calls that need a session token.
var ErrNotSignedIn = errors.New("not signed in")

type PatientSignup struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Area        string `json:"area"`
}

type ClinicSignup struct {
	ClinicName               string `json:"clinicName"`
	UserName                 string `json:"userName"`
	ContactName              string `json:"contactName"`
	Email                    string `json:"email"`
	Password                 string `json:"password"`
	ClinicRegistrationNumber string `json:"clinicRegistrationNumber"`
	UserType                 string `json:"userType"`
	NMRNumber                string `json:"nmrNumber,omitempty"`
	NUID                     string `json:"nuid,omitempty"`
	EmployeeCode             string `json:"employeeCode,omitempty"`
}

type AdminSignup struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"companyName"`
	CompanyID   string `json:"companyId"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Token   string          `json:"token"`
	User    *User           `json:"user"`
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client talks to the API and keeps its session in step with the server.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) SignupPatient(ctx context.Context, req PatientSignup) (*User, error) {
	return c.authenticate(ctx, "/api/auth/signup/patient", req)
}

func (c *Client) SignupClinic(ctx context.Context, req ClinicSignup) (*User, error) {
	return c.authenticate(ctx, "/api/auth/signup/clinic", req)
}

func (c *Client) SignupAdmin(ctx context.Context, req AdminSignup) (*User, error) {
	return c.authenticate(ctx, "/api/auth/signup/admin", req)
}

// Login signs in and stores the token and user in the session.
func (c *Client) Login(ctx context.Context, email, password, role string) (*User, error) {
	return c.authenticate(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	})
}

// Logout revokes the token on the server and clears the local session. The
// session is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	var serverErr error
	if c.session.Authenticated() {
		_, serverErr = c.do(ctx, http.MethodPost, "/api/auth/logout", nil, true)
	}
	if err := c.session.Logout(); err != nil {
		return err
	}
	return serverErr
}

// Me fetches the account behind the session token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	if !c.session.Authenticated() {
		return nil, ErrNotSignedIn
	}
	env, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, true)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}
	return &user, nil
}

func (c *Client) authenticate(ctx context.Context, path string, body interface{}) (*User, error) {
	env, err := c.do(ctx, http.MethodPost, path, body, false)
	if err != nil {
		return nil, err
	}
	if env.Token == "" || env.User == nil {
		return nil, errors.New("response carried no token")
	}
	if err := c.session.Login(*env.User, env.Token); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, withToken bool) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withToken {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}
	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message, Code: env.Error}
	}
	return &env, nil
}
