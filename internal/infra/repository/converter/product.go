package converter

import (
	"resqcart/internal/domain/product"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/pgconv"
)

func ProductToCreateParams(p *product.Product) query.CreateProductParams {
	return query.CreateProductParams{
		ID:                 p.ID(),
		StoreID:            p.StoreID(),
		Name:               p.Name(),
		Category:           p.Category(),
		SubCategory:        p.SubCategory(),
		Sku:                p.SKU(),
		Barcode:            p.Barcode(),
		Price:              pgconv.DecimalToNumeric(p.Price()),
		CurrentPrice:       pgconv.DecimalToNumeric(p.CurrentPrice()),
		DiscountPercentage: int32(p.DiscountPercentage()),
		QuantityInStock:    int32(p.QuantityInStock()),
		Unit:               p.Unit(),
		ExpirationDate:     pgconv.TimeToPgtype(p.ExpirationDate()),
		StorageConditions:  p.StorageConditions().String(),
		AtRisk:             p.AtRisk(),
		RescueStatus:       p.RescueStatus().String(),
		RescueStage:        int16(p.RescueStage()),
		RescueActionDate:   pgconv.TimePtrToPgtype(p.RescueActionDate()),
		CreatedAt:          pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProductToUpdateParams(p *product.Product) query.UpdateProductParams {
	return query.UpdateProductParams{
		ID:                 p.ID(),
		Name:               p.Name(),
		Category:           p.Category(),
		SubCategory:        p.SubCategory(),
		Barcode:            p.Barcode(),
		Price:              pgconv.DecimalToNumeric(p.Price()),
		CurrentPrice:       pgconv.DecimalToNumeric(p.CurrentPrice()),
		DiscountPercentage: int32(p.DiscountPercentage()),
		QuantityInStock:    int32(p.QuantityInStock()),
		Unit:               p.Unit(),
		ExpirationDate:     pgconv.TimeToPgtype(p.ExpirationDate()),
		StorageConditions:  p.StorageConditions().String(),
		AtRisk:             p.AtRisk(),
		RescueStatus:       p.RescueStatus().String(),
		UpdatedAt:          pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProductToRescueParams(p *product.Product) query.UpdateProductRescueParams {
	return query.UpdateProductRescueParams{
		ID:                 p.ID(),
		RescueStatus:       p.RescueStatus().String(),
		RescueStage:        int16(p.RescueStage()),
		AtRisk:             p.AtRisk(),
		DiscountPercentage: int32(p.DiscountPercentage()),
		CurrentPrice:       pgconv.DecimalToNumeric(p.CurrentPrice()),
		RescueActionDate:   pgconv.TimePtrToPgtype(p.RescueActionDate()),
		UpdatedAt:          pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProductFromRow(row query.Products) *product.Product {
	return product.ReconstructProduct(
		row.ID, row.StoreID,
		row.Name, row.Category, row.SubCategory, row.Sku, row.Barcode,
		pgconv.DecimalFromNumeric(row.Price), pgconv.DecimalFromNumeric(row.CurrentPrice),
		int(row.DiscountPercentage), int(row.QuantityInStock),
		row.Unit,
		pgconv.TimeFromPgtype(row.ExpirationDate),
		product.StorageConditions(row.StorageConditions),
		row.AtRisk,
		product.RescueStatus(row.RescueStatus),
		int(row.RescueStage),
		pgconv.TimePtrFromPgtype(row.RescueActionDate),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
