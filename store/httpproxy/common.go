package httpproxy

import "errors"

var (
	// ErrEmptyURL occurs when New receives an empty URL.
	ErrEmptyURL = errors.New("url must not be empty")

	// ErrInvalidURL occurs when New receives a URL that can not be parsed.
	ErrInvalidURL = errors.New("url is not valid")

	// ErrNilHTTPClient occurs when WithClient receives a nil client.
	ErrNilHTTPClient = errors.New("http client must not be nil")

	// ErrRequestFailed occurs when the HTTP request can not be completed.
	ErrRequestFailed = errors.New("http request failed")

	// ErrUnexpectedStatus occurs when the endpoint answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected http response status")

	// ErrDecodingResponseFailed occurs when the response body is not a JSON array of objects.
	ErrDecodingResponseFailed = errors.New("decoding response body failed")
)
