package models

type LoginSuccessResponse struct {
	Message string `json:"message" example:"login successful"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
	Role    string `json:"role" example:"guard"`
}

type RegisterSuccessResponse struct {
	Message string `json:"message" example:"user registered"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
	Code  string `json:"code,omitempty" example:"invalid_argument"`
}
