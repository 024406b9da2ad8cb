package types

const (
	STATUS_SUCCESS = "success"
	STATUS_FAIL    = "fail"
)

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
