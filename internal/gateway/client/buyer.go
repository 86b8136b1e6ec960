package client

import (
	"context"
	"net/url"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// BuyerClient talks to the buyer directory service.
type BuyerClient struct {
	base *Client
}

func NewBuyerClient(base *Client) *BuyerClient {
	return &BuyerClient{base: base}
}

type profileEnvelope struct {
	Profile *domain.Profile `json:"profile"`
}

type addressEnvelope struct {
	Address *domain.Address `json:"address"`
}

// Profile fetches the buyer's profile record.
func (c *BuyerClient) Profile(ctx context.Context, username string) (*domain.Profile, error) {
	var env profileEnvelope
	if err := c.base.get(ctx, "/buyers/"+url.PathEscape(username)+"/profile", nil, &env); err != nil {
		return nil, err
	}
	return env.Profile, nil
}

// Address fetches the buyer's stored address.
func (c *BuyerClient) Address(ctx context.Context, username string) (*domain.Address, error) {
	var env addressEnvelope
	if err := c.base.get(ctx, "/buyers/"+url.PathEscape(username)+"/address", nil, &env); err != nil {
		return nil, err
	}
	return env.Address, nil
}
