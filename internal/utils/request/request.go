// Package request holds the small parsing steps every handler repeats:
// decoding a JSON body and reading a numeric {id} path segment.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

var (
	ErrEmptyBody = errors.New("request body is empty")
	ErrInvalidID = errors.New("invalid id: must be an integer")
)

// DecodeJSON decodes the request body into dst.
//
// io.EOF on the very first read means the client sent no body at all;
// that gets its own message instead of the decoder's "EOF".
func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// PathID parses the {id} segment matched by a "…/{id}" ServeMux pattern.
func PathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
