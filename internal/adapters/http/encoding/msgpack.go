package encoding

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

const ContentTypeMsgpack = "application/msgpack"
const ContentTypeJSON = "application/json"

// NegotiateContentType checks the Accept header and returns the preferred content type
func NegotiateContentType(r *http.Request) string {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return ContentTypeJSON
	}

	if strings.Contains(accept, ContentTypeMsgpack) {
		return ContentTypeMsgpack
	}

	return ContentTypeJSON
}

// IsMsgpackBody reports whether the request body is declared as MessagePack
func IsMsgpackBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == ContentTypeMsgpack
}

// WriteMsgpack writes a MessagePack response with the given status code
func WriteMsgpack(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", ContentTypeMsgpack)
	w.WriteHeader(status)

	encoder := msgpack.NewEncoder(w)
	return encoder.Encode(data)
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Write encodes data in the content type negotiated for r
func Write(w http.ResponseWriter, r *http.Request, status int, data interface{}) error {
	if NegotiateContentType(r) == ContentTypeMsgpack {
		return WriteMsgpack(w, status, data)
	}
	return WriteJSON(w, status, data)
}

// ReadMsgpack reads MessagePack data from the request body. An empty body
// leaves target at its zero value, as Read does for JSON.
func ReadMsgpack(r *http.Request, target interface{}) error {
	decoder := msgpack.NewDecoder(r.Body)
	err := decoder.Decode(target)
	if err == io.EOF {
		return nil
	}
	return err
}

// Read decodes the request body as MessagePack or JSON depending on its Content-Type
func Read(r *http.Request, target interface{}) error {
	if IsMsgpackBody(r) {
		return ReadMsgpack(r, target)
	}
	err := json.NewDecoder(r.Body).Decode(target)
	if err == io.EOF {
		// An empty body decodes to the zero value; field checks report what is missing.
		return nil
	}
	return err
}
