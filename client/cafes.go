package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cafeadmin/model"
)

func (c *Client) ListCafes(ctx context.Context) ([]model.Cafe, error) {
	var cafes []model.Cafe
	if err := c.do(ctx, "list cafes", http.MethodGet, "/cafes/GetCafes", nil, &cafes); err != nil {
		return nil, err
	}
	for i, cafe := range cafes {
		if cafe.ID == "" {
			return nil, &PayloadError{Op: "list cafes", Reason: fmt.Sprintf("cafe at index %d has no id", i)}
		}
	}
	return cafes, nil
}

func (c *Client) CreateCafe(ctx context.Context, cafe model.Cafe) (model.Cafe, error) {
	cafe.ID = ""
	cafe.EmployeeCount = 0
	return c.saveCafe(ctx, "create cafe", http.MethodPost, "/cafes/CreateCafe", cafe)
}

func (c *Client) UpdateCafe(ctx context.Context, cafe model.Cafe) (model.Cafe, error) {
	if cafe.ID == "" {
		return model.Cafe{}, fmt.Errorf("update cafe: missing id")
	}
	cafe.EmployeeCount = 0
	return c.saveCafe(ctx, "update cafe", http.MethodPut, "/cafes/UpdateCafe", cafe)
}

func (c *Client) saveCafe(ctx context.Context, op, method, path string, cafe model.Cafe) (model.Cafe, error) {
	var saved model.Cafe
	if err := c.do(ctx, op, method, path, cafe, &saved); err != nil {
		return model.Cafe{}, err
	}
	if saved.ID == "" {
		return model.Cafe{}, &PayloadError{Op: op, Reason: "cafe has no id"}
	}
	return saved, nil
}

func (c *Client) DeleteCafe(ctx context.Context, cafeID string) error {
	return c.do(ctx, "delete cafe", http.MethodDelete, "/cafes/DeleteCafe/"+url.PathEscape(cafeID), nil, nil)
}
