package constants

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyUserID    = "user_id"
	CtxKeyRole      = "role"
	CtxKeyRequestID = "request_id"

	ViperListenAddr  = "listen_addr"
	ViperPostgresDSN = "postgres_dsn"
	ViperSecretKey   = "secret_key"
	ViperCORSOrigin  = "cors_origin"

	RoleAdmin     = "Admin"
	RoleInspector = "Inspector"
	RoleOfficer   = "LicenseOfficer"
)
