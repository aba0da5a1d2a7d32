package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a customer invoices are addressed to. Province, when set,
// overrides the business province for tax purposes.
type Client struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      Name
	Email     string
	Address   string
	Province  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientDetails holds the editable fields of a Client.
type ClientDetails struct {
	Name     Name
	Email    string
	Address  string
	Province string
}

func NewClient(ownerID uuid.UUID, d ClientDetails) *Client {
	now := time.Now().UTC()
	c := &Client{ID: uuid.New(), OwnerID: ownerID, CreatedAt: now}
	c.apply(d, now)
	return c
}

func (c *Client) Update(d ClientDetails) {
	c.apply(d, time.Now().UTC())
}

func (c *Client) apply(d ClientDetails, now time.Time) {
	c.Name = d.Name
	c.Email = strings.TrimSpace(d.Email)
	c.Address = strings.TrimSpace(d.Address)
	c.Province = strings.ToUpper(strings.TrimSpace(d.Province))
	c.UpdatedAt = now
}
