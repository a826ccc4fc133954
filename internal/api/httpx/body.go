package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 100 << 10

// Fields flattens a JSON or form encoded body into string values. Falsy JSON
// values (null, false, 0, "") come back as "", the same as a missing field.
// Bodies of any other content type yield no fields.
func Fields(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	out := map[string]string{}
	if r.Body == nil || r.Body == http.NoBody {
		return out, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/json":
		return jsonFields(r.Body)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxBodyBytes); err != nil {
			return nil, err
		}
	default:
		return out, nil
	}
	for k, v := range r.PostForm {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out, nil
}

// jsonFields reads a JSON object's members. Any other top-level value
// (array, string, number, null) carries no named fields and yields none.
func jsonFields(body io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]string{}, nil
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return map[string]string{}, nil
	}

	out := make(map[string]string, len(obj))
	for k, v := range obj {
		s, err := scalar(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = s
	}
	return out, nil
}

func scalar(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		if !x {
			return "", nil
		}
		return "true", nil
	case float64:
		if x == 0 {
			return "", nil
		}
		return numberText(x), nil
	default:
		return "", errors.New("must be a string or number")
	}
}

// numberText renders a JSON number the way it reads when converted to text:
// plain digits below 1e21, exponent form above.
func numberText(f float64) string {
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
