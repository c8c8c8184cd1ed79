package common

// MaxNameAttempts bounds how many candidate codes are tried before an upload
// is rejected as overloaded.
const MaxNameAttempts = 64

// RequestIDHeaderName carries the per-request id on responses.
const RequestIDHeaderName = "X-Request-Id"

// NameQueryParam is the query parameter an uploader uses to suggest a file name.
const NameQueryParam = "name"

// LineTerminator ends the code line sent to uploaders.
const LineTerminator = "\r\n"
