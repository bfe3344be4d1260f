package composables

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/houseworklog/houseworklog/pkg/constants"
	"github.com/houseworklog/houseworklog/pkg/shared"
)

// UseLogger returns the request-scoped logger from the context.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		panic("logger not found")
	}
	return logger.(*logrus.Entry)
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseFlash reads and clears the named flash cookie. A missing cookie is
// not an error; it yields a nil payload.
func UseFlash(w http.ResponseWriter, r *http.Request, name string) ([]byte, error) {
	c, err := r.Cookie(name)
	if err != nil {
		switch err {
		case http.ErrNoCookie:
			return nil, nil
		default:
			return nil, err
		}
	}
	val, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil, err
	}
	dc := &http.Cookie{Name: name, Path: "/", MaxAge: -1, Expires: time.Unix(1, 0)}
	http.SetCookie(w, dc)
	return val, nil
}

// SetFlash stores the payload in a cookie consumed by the next request.
func SetFlash(w http.ResponseWriter, name string, value []byte) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Path:     "/",
		Value:    base64.URLEncoding.EncodeToString(value),
		HttpOnly: true,
	})
}

// UseFlashSlice decodes a JSON-encoded flash payload into a slice.
func UseFlashSlice[T any](w http.ResponseWriter, r *http.Request, name string) ([]T, error) {
	bytes, err := UseFlash(w, r, name)
	if err != nil {
		return nil, err
	}
	if len(bytes) == 0 {
		return nil, nil
	}
	var out []T
	return out, json.Unmarshal(bytes, &out)
}

// UseForm decodes the parsed form body into a `form`-tagged struct.
// ParseForm is a no-op when the body was already parsed, multipart
// included, so the handler controls how the body is read.
func UseForm[T comparable](v T, r *http.Request) (T, error) {
	if err := r.ParseForm(); err != nil {
		return v, err
	}
	return v, shared.Decoder.Decode(v, r.Form)
}
