// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type submitTestimonialRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

type approvalResponse struct {
	ID       int64 `json:"id"`
	Approved bool  `json:"approved"`
}
