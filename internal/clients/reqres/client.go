package reqres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dom "userdir/internal/domain/user"
	"userdir/internal/httpclient"
	"userdir/internal/logging"
)

type Config struct {
	BaseURL   string
	UsersPath string
	APIKey    string
	Timeout   time.Duration
}

// Client reads the user collection from a reqres-style API.
type Client struct {
	http      *httpclient.Client
	usersPath string
	logger    logging.Logger
}

type listUsersResponse struct {
	Data json.RawMessage `json:"data"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

func New(cfg Config, logger logging.Logger, opts ...httpclient.Option) (*Client, error) {
	if cfg.APIKey != "" {
		opts = append(opts, httpclient.WithHeader("x-api-key", cfg.APIKey))
	}

	httpCli, err := httpclient.New(cfg.BaseURL, cfg.Timeout, logger.With("component", "reqres_http"), opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:      httpCli,
		usersPath: cfg.UsersPath,
		logger:    logger.With("component", "reqres_client"),
	}, nil
}

// ListUsers fetches the whole collection. No paging parameters are sent.
// Anything but { "data": [ users... ] } yields dom.ErrMalformedResponse.
func (c *Client) ListUsers(ctx context.Context) ([]dom.User, error) {
	var res listUsersResponse
	if err := c.http.GetJSON(ctx, c.usersPath, nil, &res); err != nil {
		if errors.Is(err, httpclient.ErrDecode) {
			return nil, fmt.Errorf("%w: %w", dom.ErrMalformedResponse, err)
		}
		return nil, fmt.Errorf("get users: %w", err)
	}

	users, err := decodeUsers(res.Data)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("users fetched", "count", len(users))
	return users, nil
}

func decodeUsers(raw json.RawMessage) ([]dom.User, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: data is not an array", dom.ErrMalformedResponse)
	}

	var items []userResponse
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", dom.ErrMalformedResponse, err)
	}

	return toDomainUsers(items), nil
}

func toDomainUsers(list []userResponse) []dom.User {
	res := make([]dom.User, 0, len(list))
	for _, u := range list {
		res = append(res, dom.User{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Avatar:    u.Avatar,
		})
	}
	return res
}
