package response

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope of every successful API reply.
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is the envelope of every failed API reply. Error is a stable
// machine readable code, Details is meant for humans.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

func MessageResponse(msg string) Response {
	return Response{
		Status:  StatusSuccess,
		Message: msg,
	}
}
