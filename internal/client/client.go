// Package client talks to a remote task API and exposes it through the same
// Store contract as the in-process backends. Transport failures and 5xx
// answers surface as UnavailableError so callers can tell "no data" from
// "request failed".
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"taskwise/internal/models"
	"taskwise/internal/store"
)

// Client is a remote Store over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL. No retries; a single
// request/response per operation, with a conservative timeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) List() ([]models.Task, error) {
	var tasks []models.Task
	if err := c.getJSON("/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Get(id uint) (*models.Task, error) {
	var task models.Task
	if err := c.getJSON(fmt.Sprintf("/tasks/%d", id), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Create(draft models.Draft) (*models.Task, error) {
	var task models.Task
	if err := c.sendJSON(http.MethodPost, "/tasks", draft, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Update(id uint, draft models.Draft) (*models.Task, error) {
	var task models.Task
	if err := c.sendJSON(http.MethodPut, fmt.Sprintf("/tasks/%d", id), draft, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Delete(id uint) (bool, error) {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+fmt.Sprintf("/tasks/%d", id), nil)
	if err != nil {
		return false, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, &store.UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		// Deletion is idempotent; a missing id is a no-op, not an error.
		return false, nil
	default:
		return false, statusError(resp)
	}
}

func (c *Client) Pending() ([]models.Task, error) {
	var tasks []models.Task
	if err := c.getJSON("/tasks/pending", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Suggest() ([]models.Task, error) {
	var tasks []models.Task
	if err := c.getJSON("/tasks/suggest", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Search(query string) ([]models.Task, error) {
	var tasks []models.Task
	path := "/tasks/search?q=" + url.QueryEscape(query)
	if err := c.getJSON(path, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return &store.UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) sendJSON(method, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &store.UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// statusError maps an HTTP failure onto the store's error taxonomy.
func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return store.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return &store.ValidationError{Field: "draft", Reason: apiErrorMessage(resp)}
	default:
		return &store.UnavailableError{
			Err: fmt.Errorf("server answered %s", resp.Status),
		}
	}
}

func apiErrorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return "rejected by server"
}
