package response

import "resqcart/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string             `json:"accessToken"`
	Admin       *queries.AdminView `json:"admin"`
}
