package mcservice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Envelope describes how the server wraps response bodies
type Envelope int

const (
	// EnvelopeBare bodies are the payload itself. an `error` field is only
	// looked at when the status is not 2xx
	EnvelopeBare Envelope = iota
	// EnvelopeWrapped bodies look like {"data": ..., "error": ...} and a
	// non-empty error fails the call whatever the status
	EnvelopeWrapped
)

func (e Envelope) String() string {
	switch e {
	case EnvelopeWrapped:
		return "wrapped"
	default:
		return "bare"
	}
}

func ParseEnvelope(s string) (Envelope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bare":
		return EnvelopeBare, nil
	case "wrapped":
		return EnvelopeWrapped, nil
	}
	return EnvelopeBare, fmt.Errorf("unknown envelope %q, expected bare or wrapped", s)
}

// TransportError is returned when no usable response came back: the
// request failed or the body could not be read as json
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError is a failure the server reported, either with a non-2xx
// status or a non-empty error field
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

type Decoder struct {
	Envelope Envelope
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) message(defaultMessage string) string {
	if b.Error != "" {
		return b.Error
	}
	if b.Message != "" {
		return b.Message
	}
	return defaultMessage
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// Decode turns the result of an http call into a T. every call to the
// backend goes through here so errors look the same everywhere.
func Decode[T any](d Decoder, resp *http.Response, err error, defaultMessage string) (T, error) {
	var zero T
	if err != nil {
		return zero, &TransportError{Op: defaultMessage, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &TransportError{
			Op:  defaultMessage,
			Err: fmt.Errorf("received status code %d and failed to read body: %w", resp.StatusCode, err),
		}
	}
	body = bytes.TrimSpace(body)

	if d.Envelope == EnvelopeWrapped {
		return decodeWrapped[T](resp.StatusCode, body, defaultMessage)
	}
	return decodeBare[T](resp.StatusCode, body, defaultMessage)
}

func decodeWrapped[T any](statusCode int, body []byte, defaultMessage string) (T, error) {
	var zero T
	envelope := struct {
		Data  *T     `json:"data"`
		Error string `json:"error"`
	}{}

	if len(body) > 0 {
		if err := json.Unmarshal(body, &envelope); err != nil {
			if !isSuccess(statusCode) {
				return zero, &ServerError{StatusCode: statusCode, Message: defaultMessage}
			}
			return zero, &TransportError{Op: defaultMessage, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}

	if envelope.Error != "" {
		return zero, &ServerError{StatusCode: statusCode, Message: envelope.Error}
	}
	if !isSuccess(statusCode) {
		return zero, &ServerError{StatusCode: statusCode, Message: defaultMessage}
	}
	if envelope.Data == nil {
		return zero, nil
	}

	return *envelope.Data, nil
}

func decodeBare[T any](statusCode int, body []byte, defaultMessage string) (T, error) {
	var zero T
	if !isSuccess(statusCode) {
		errBody := errorBody{}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &errBody); err != nil {
				return zero, &ServerError{StatusCode: statusCode, Message: defaultMessage}
			}
		}
		return zero, &ServerError{StatusCode: statusCode, Message: errBody.message(defaultMessage)}
	}

	if len(body) == 0 {
		return zero, nil
	}

	out := zero
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, &TransportError{Op: defaultMessage, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return out, nil
}
