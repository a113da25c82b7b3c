package request

type RegisterFoodBankRequest struct {
	Name               string   `json:"name" binding:"required,max=200"`
	ContactPerson      string   `json:"contactPerson" binding:"required,max=200"`
	Email              string   `json:"email" binding:"required,email"`
	Phone              string   `json:"phone" binding:"required,max=32"`
	Street             string   `json:"street" binding:"max=200"`
	City               string   `json:"city" binding:"max=100"`
	State              string   `json:"state" binding:"max=100"`
	ZipCode            string   `json:"zipCode" binding:"max=20"`
	Latitude           *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude          *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	AcceptedCategories []string `json:"acceptedCategories" binding:"omitempty,dive,max=100"`
}

type UpdateVerificationRequest struct {
	Status string `json:"status" binding:"required,oneof=pending verified rejected"`
}
