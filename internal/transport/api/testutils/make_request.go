package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
}

type requestOptions struct {
	headers map[string]string
	body    io.Reader
	err     error
}

type RequestOption func(*requestOptions)

// Response результат запроса с уже прочитанным телом.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// DecodeJSON разбирает тело ответа в v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response %q: %w", r.Body, err)
	}
	return nil
}

// MakeRequest выполняет запрос к роутеру без поднятия сервера.
func MakeRequest(args RequestArgs, opts ...RequestOption) (*Response, error) {
	options := requestOptions{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	request := httptest.NewRequest(args.Method, args.URL, options.body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	result := recorder.Result()
	defer result.Body.Close() //nolint:errcheck

	body, readErr := io.ReadAll(result.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response body: %w", readErr)
	}
	return &Response{
		StatusCode: result.StatusCode,
		Header:     result.Header,
		Body:       body,
	}, nil
}

func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers[key] = value
	}
}

// WithBearer пустой токен запрос отправляется без авторизации.
func WithBearer(token string) RequestOption {
	return func(o *requestOptions) {
		if token != "" {
			o.headers["Authorization"] = "Bearer " + token
		}
	}
}

// WithJSON сериализует payload в тело запроса. nil payload тело не добавляет.
func WithJSON(payload any) RequestOption {
	return func(o *requestOptions) {
		o.headers["Content-Type"] = "application/json"
		if payload == nil {
			return
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			o.err = fmt.Errorf("marshal request payload: %w", err)
			return
		}
		o.body = bytes.NewReader(raw)
	}
}
