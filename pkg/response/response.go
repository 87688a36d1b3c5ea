package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token       string `json:"token"`
	UID         uint   `json:"user_id"`
	Username    string `json:"username"`
	AccountType string `json:"account_type"`
}
