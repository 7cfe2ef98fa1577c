package testutil

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
)

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewFormRequest creates a form POST request with the given values.
func NewFormRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// NewAJAXRequest creates a request carrying the header browsers attach to
// fetch/XHR calls, which switches handlers into JSON responses.
func NewAJAXRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// NewMultipartRequest creates a multipart form POST with text fields only,
// matching what the brand and model forms send without a file attached.
func NewMultipartRequest(target string, fields map[string]string) *http.Request {
	return NewMultipartUpload(target, "", "", nil, fields)
}

// NewMultipartUpload creates a multipart form POST carrying fields plus one
// file part with an explicit content type. fileField may be empty to skip
// the file.
func NewMultipartUpload(target, fileField, fileName string, fileBody []byte, fields map[string]string) *http.Request {
	return NewMultipartUploadTyped(target, fileField, fileName, "image/png", fileBody, fields)
}

// NewMultipartUploadTyped is NewMultipartUpload with a caller-chosen part
// content type, for exercising the non-image rejection path.
func NewMultipartUploadTyped(target, fileField, fileName, contentType string, fileBody []byte, fields map[string]string) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if fileField != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, fileName))
		hdr.Set("Content-Type", contentType)
		part, _ := mw.CreatePart(hdr)
		_, _ = part.Write(fileBody)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// AsAJAX marks the request as a fetch/XHR call.
func AsAJAX(req *http.Request) *http.Request {
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	return req
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// AssertJSONContentType checks the response declares a JSON body.
func (r *ResponseRecorder) AssertJSONContentType(t interface{ Errorf(string, ...any) }) {
	ct := r.Header().Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type: got %q, want application/json", ct)
	}
}
