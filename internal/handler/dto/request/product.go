package request

import "caja-api/internal/usecase"

type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Cost        string `json:"cost"`
	Stock       int32  `json:"stock" binding:"min=0"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category" binding:"required,oneof=cafeteria fridge food"`
}

func (r *ProductRequest) ToParams() usecase.ProductParams {
	return usecase.ProductParams{
		Name:        r.Name,
		Price:       r.Price,
		Cost:        r.Cost,
		Stock:       r.Stock,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
	}
}

type ImportProductsRequest struct {
	Products []ProductRequest `json:"products" binding:"required,min=1,dive"`
}

func (r *ImportProductsRequest) ToParams() []usecase.ProductParams {
	params := make([]usecase.ProductParams, len(r.Products))
	for i, p := range r.Products {
		params[i] = p.ToParams()
	}
	return params
}
