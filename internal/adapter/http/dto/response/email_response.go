package response

type EmailVerifyResponse struct {
	Message string `json:"message"`
	Valid   bool   `json:"valid"`
}

type EmailSendResponse struct {
	Message string `json:"message"`
}
