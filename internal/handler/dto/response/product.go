package response

import "resqcart/internal/usecase/queries"

type ProductListResponse struct {
	Items      []*queries.ProductView `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

func FromProductPage(items []*queries.ProductView, next *queries.Cursor) *ProductListResponse {
	if items == nil {
		items = []*queries.ProductView{}
	}
	resp := &ProductListResponse{Items: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
