package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls so the logging middleware can
// observe the status code and body size after the downstream handler has
// returned, without buffering the response.
//
// WriteHeader is forwarded to the underlying writer exactly once;
// subsequent calls are silently ignored, mirroring the behaviour
// documented by the [http.ResponseWriter] interface.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	status int

	// wroteHeader guards against forwarding a second WriteHeader.
	wroteHeader bool

	// size is the running total of bytes written to the response body.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write writes b to the underlying writer, implicitly sending a 200
// status first when WriteHeader has not been called, matching the
// standard library's response writer.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
