package converter

import (
	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func RescueRequestToCreateParams(r *rescue.Request) query.CreateRescueRequestParams {
	return query.CreateRescueRequestParams{
		ID:                  r.ID(),
		StoreID:             r.StoreID(),
		FoodBankID:          pgconv.UUIDPtrToPgtype(r.FoodBankID()),
		RescueType:          r.RescueType().String(),
		RescueCascadeStage:  int16(r.CascadeStage()),
		DaysUntilExpiration: intPtrToPgtype(r.DaysUntilExpiration()),
		Status:              r.Status().String(),
		ScheduledPickupTime: pgconv.TimePtrToPgtype(r.ScheduledPickupTime()),
		TotalValue:          pgconv.DecimalToNumeric(r.TotalValue()),
		TotalWeight:         r.TotalWeight(),
		EnvironmentalImpact: r.EnvironmentalImpact(),
		Notes:               r.Notes(),
		CreatedAt:           pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RescueRequestToStatusParams(r *rescue.Request) query.UpdateRescueRequestStatusParams {
	return query.UpdateRescueRequestStatusParams{
		ID:                  r.ID(),
		Status:              r.Status().String(),
		FoodBankID:          pgconv.UUIDPtrToPgtype(r.FoodBankID()),
		ScheduledPickupTime: pgconv.TimePtrToPgtype(r.ScheduledPickupTime()),
		ActualPickupTime:    pgconv.TimePtrToPgtype(r.ActualPickupTime()),
		UpdatedAt:           pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RescueRequestFromRow(row query.RescueRequests, productIDs []uuid.UUID) *rescue.Request {
	return rescue.ReconstructRequest(
		row.ID, row.StoreID,
		pgconv.UUIDPtrFromPgtype(row.FoodBankID),
		productIDs,
		product.RescueStatus(row.RescueType),
		int(row.RescueCascadeStage),
		intPtrFromPgtype(row.DaysUntilExpiration),
		rescue.Status(row.Status),
		pgconv.TimePtrFromPgtype(row.ScheduledPickupTime), pgconv.TimePtrFromPgtype(row.ActualPickupTime),
		pgconv.DecimalFromNumeric(row.TotalValue),
		row.TotalWeight, row.EnvironmentalImpact,
		row.Notes,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func intPtrToPgtype(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}

func intPtrFromPgtype(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}
