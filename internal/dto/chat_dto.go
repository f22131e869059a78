package dto

type ProcessMessageRequest struct {
	UserId  string `json:"user_id" validate:"required"`
	Message string `json:"message"`
}

type ProcessImageRequest struct {
	UserId      string `json:"user_id" validate:"required"`
	Message     string `json:"message"`
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type ProcessMessageResponse struct {
	Response string `json:"response"`
	Intent   string `json:"intent"`
}
