package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ListConsultations fetches all consultation records.
func (c *Client) ListConsultations(ctx context.Context) ([]Consultation, error) {
	var out []Consultation
	if err := c.do(ctx, http.MethodGet, "/consultations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetConsultation fetches one consultation by id.
func (c *Client) GetConsultation(ctx context.Context, id string) (*Consultation, error) {
	var out Consultation
	if err := c.do(ctx, http.MethodGet, "/consultations/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateConsultation adds a consultation record.
func (c *Client) CreateConsultation(ctx context.Context, con Consultation) (*Consultation, error) {
	var out Consultation
	if err := c.do(ctx, http.MethodPost, "/consultations", con, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConsultation replaces a consultation record.
func (c *Client) UpdateConsultation(ctx context.Context, id string, con Consultation) (*Consultation, error) {
	var out Consultation
	if err := c.do(ctx, http.MethodPut, "/consultations/"+url.PathEscape(id), con, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
