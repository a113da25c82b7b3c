package response

import "resqcart/internal/usecase/commands"

type CascadeStageCounts struct {
	Stage1 int `json:"stage1"`
	Stage2 int `json:"stage2"`
	Stage3 int `json:"stage3"`
	Stage4 int `json:"stage4"`
}

type CascadeResponse struct {
	Message                string             `json:"message"`
	Results                CascadeStageCounts `json:"results"`
	TotalProductsProcessed int                `json:"totalProductsProcessed"`
	TotalProductsRescued   int                `json:"totalProductsRescued"`
	RequestsCreated        int                `json:"requestsCreated"`
}

func FromCascadeResult(r *commands.CascadeResult) *CascadeResponse {
	return &CascadeResponse{
		Message: "Rescue cascade completed",
		Results: CascadeStageCounts{
			Stage1: r.Counts.Stage1,
			Stage2: r.Counts.Stage2,
			Stage3: r.Counts.Stage3,
			Stage4: r.Counts.Stage4,
		},
		TotalProductsProcessed: r.TotalProductsProcessed,
		TotalProductsRescued:   r.TotalProductsRescued,
		RequestsCreated:        r.RequestsCreated,
	}
}
