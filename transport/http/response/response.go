package response

import (
	"encoding/json"
	"net/http"

	"worktrack/shared/constant"
	"worktrack/shared/failure"
	"worktrack/shared/logger"
)

// The envelope shapes below are the external API contract:
// collection reads use {data}, creation uses {todo}, by-id mutations use
// {success, data} or {success, message}, and failures use {success, message}.

type Data[T any] struct {
	Data T `json:"data"`
}

type Created[T any] struct {
	Todo T `json:"todo"`
}

type Result[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithData sends the collection envelope.
func WithData(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Data[any]{Data: payload})
}

// WithCreated sends the creation envelope.
func WithCreated(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Created[any]{Todo: payload})
}

// WithResult sends the mutation envelope carrying the updated record.
func WithResult(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Result[any]{Success: true, Data: payload})
}

// WithAck sends a bodyless-success acknowledgment.
func WithAck(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Ack{Success: true, Message: message})
}

// WithMessage sends a response with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithError translates the failure taxonomy to a status code: validation
// errors to 400, not-found to 404, anything else to 500.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	response(writer, code, Ack{Success: false, Message: err.Error()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down.
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy.
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
