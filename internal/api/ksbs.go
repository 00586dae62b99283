package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ellieharper/otj/internal/domain"
)

// ListKSBs fetches the KSB reference catalog.
func (c *Client) ListKSBs(ctx context.Context) ([]domain.KSBTag, error) {
	var tags []domain.KSBTag
	if err := c.do(ctx, http.MethodGet, "/ksbs", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// ListKSBsByType fetches the catalog filtered to one KSB type.
func (c *Client) ListKSBsByType(ctx context.Context, typ domain.KSBType) ([]domain.KSBTag, error) {
	var tags []domain.KSBTag
	path := "/ksbs/type/" + url.PathEscape(string(typ))
	if err := c.do(ctx, http.MethodGet, path, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
