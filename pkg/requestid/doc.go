// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a valid client-supplied X-Request-ID header or generates a
// UUIDv4, stores it in the request context and echoes it in the response.
// LoggerExtractor plugs the id into pkg/logger so every record written while
// serving the request carries a request_id attribute.
package requestid
