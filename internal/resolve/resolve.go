// Package resolve executes signed requests and resolves their responses.
//
// A response has one of two shapes: on a 2xx status the body is the
// operation's payload, decoded per the strategy the call site expects; on
// any other status the body is an S3 fault envelope. The resolver is a
// two-branch decision on status code, never a content sniff.
package resolve

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/quillstack/s3kit/errors"
)

// RawResponse is the transport's view of a completed exchange.
// It is consumed immediately by a decode strategy.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *RawResponse) success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Execute sends a signed request and reads the full response eagerly.
// Connection-level failures come back as *errors.TransportError and are
// never conflated with errors the server reported.
func Execute(client *http.Client, req *http.Request) (*RawResponse, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, &errors.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.TransportError{Err: err}
	}
	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// ExecuteStream sends a signed request and, on success, hands back the body
// stream without buffering it. Non-2xx responses are buffered and resolved
// into the usual error shapes before any reader is returned, so the caller
// never has to distinguish the two paths.
func ExecuteStream(client *http.Client, req *http.Request) (io.ReadCloser, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, &errors.TransportError{Err: err}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Body, nil
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.TransportError{Err: err}
	}
	raw := &RawResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}
	return nil, apiError(raw)
}

// Bytes resolves a response whose success payload is the raw body.
func Bytes(r *RawResponse) ([]byte, error) {
	if !r.success() {
		return nil, apiError(r)
	}
	return r.Body, nil
}

// Text resolves a response whose success payload must be valid UTF-8 text.
// Invalid UTF-8 is a decode failure, never silently replaced or truncated.
func Text(r *RawResponse) (string, error) {
	if !r.success() {
		return "", apiError(r)
	}
	if !utf8.Valid(r.Body) {
		return "", &errors.DecodeError{
			StatusCode: r.StatusCode,
			Body:       r.Body,
			Err:        fmt.Errorf("body is not valid UTF-8"),
		}
	}
	return string(r.Body), nil
}

// XML resolves a response whose success payload is an XML document,
// decoding it into the given value.
func XML(r *RawResponse, into any) error {
	if !r.success() {
		return apiError(r)
	}
	if err := xml.Unmarshal(r.Body, into); err != nil {
		return &errors.DecodeError{
			StatusCode: r.StatusCode,
			Body:       r.Body,
			Err:        err,
		}
	}
	return nil
}

// None resolves a response for operations with no meaningful success
// payload; the body is ignored on success.
func None(r *RawResponse) error {
	if !r.success() {
		return apiError(r)
	}
	return nil
}

// apiError interprets a failure body as a fault envelope. Some failure
// responses (plain-text 403s from proxies, body-less HEAD responses) are
// not valid envelopes; those fall back to a DecodeError carrying the raw
// status and body.
func apiError(r *RawResponse) error {
	apiErr := &errors.APIError{}
	if err := xml.Unmarshal(r.Body, apiErr); err != nil || apiErr.Code == "" {
		if err == nil {
			err = fmt.Errorf("fault envelope has no error code")
		}
		return &errors.DecodeError{
			StatusCode: r.StatusCode,
			Body:       bytes.TrimSpace(r.Body),
			Err:        err,
		}
	}
	apiErr.StatusCode = r.StatusCode
	return apiErr
}
