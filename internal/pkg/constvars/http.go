package constvars

const (
	MIMETextPlain                  = "text/plain"
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationYAML            = "application/yaml"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusConflict            = 409
	StatusRequestEntityTooBig = 413
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization               = "Authorization"
	HeaderAccept                      = "Accept"
	HeaderContentType                 = "Content-Type"
	HeaderContentLength               = "Content-Length"
	HeaderOrigin                      = "Origin"
	HeaderUserAgent                   = "User-Agent"
	HeaderXForwardedFor               = "X-Forwarded-For"
	HeaderXRequestID                  = "X-Request-ID"
	HeaderAccessControlExposeHeaders  = "Access-Control-Expose-Headers"
	HeaderAccessControlAllowOrigin    = "Access-Control-Allow-Origin"
	HeaderAccessControlAllowedMethods = "Access-Control-Allow-Methods"
)

const (
	AuthorizationBearerPrefix = "Bearer "
)
