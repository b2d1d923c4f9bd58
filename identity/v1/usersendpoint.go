package v1

import (
	"context"
	"encoding/json"
	"strconv"
)

// UserDTO is the provider's user record, reduced to the fields the timeclock
// mirrors.
type UserDTO struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	Surname    string  `json:"surname"`
	Email      *string `json:"email,omitempty"`
	Permission string  `json:"permission"`
}

type userPageDTO struct {
	Data  []UserDTO `json:"data"`
	Total int       `json:"total"`
}

type UsersEndpoint struct {
	transport *Transport
}

// List pages through the provider's user directory.
func (ep *UsersEndpoint) List(ctx context.Context, limit, offset int) ([]UserDTO, int, error) {
	resp, err := ep.transport.Get(ctx, "/api/v1/users", map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	})
	if err != nil {
		return nil, 0, err
	}

	var page userPageDTO
	if err := json.Unmarshal(resp.Data, &page); err != nil {
		return nil, 0, err
	}
	return page.Data, page.Total, nil
}
