package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Booking created successfully"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type UploadResponse struct {
	Message string `json:"message" example:"File uploaded successfully"`
	FileURL string `json:"file_url" example:"/uploads/3f1a.png"`
}
