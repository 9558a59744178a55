package portal

const DatesLayout = "2006-01-02 15:04:05"

// ---- HTTP

const RequestIDHeader = "X-Request-ID"
const ContentTypeHeader = "Content-Type"
const AcceptHeader = "Accept"
const AcceptEncodingHeader = "Accept-Encoding"
const UserAgentHeader = "User-Agent"

const JsonContentType = "application/json"
const SupportedEncodings = "br, gzip, zstd"

// ---- Context

type contextKey string

const RequestIDKey contextKey = "request.id"
