package response

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse reports every violated field of a rejected write.
type ValidationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// URLResponse carries the address of an uploaded artifact (image,
// exported report).
type URLResponse struct {
	URL string `json:"url"`
}
