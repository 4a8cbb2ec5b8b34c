package protocol

type StringResponse struct {
	Code int    `json:"code"` //状态码
	Data string `json:"data"` //字符串数据
}

type CommonResponse struct {
	Code int         `json:"code"` //状态码
	Data interface{} `json:"data"`
}

var SuccessResponse = StringResponse{0, "success"}

var EmptyMessage = &None{}

type EmptyRequest struct{}

type None struct{}

type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}
