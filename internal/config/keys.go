package config

const (
	KeyServerPort          = "server.port"
	KeyTLSEnabled          = "server.tls.enabled"
	KeyTLSCertFile         = "server.tls.cert_file"
	KeyTLSKeyFile          = "server.tls.key_file"
	KeyCORSAllowedOrigins  = "server.cors.allowed_origins"
	KeyWriteTimeout        = "server.write_timeout"
	KeyMaxUploadBytes      = "server.max_upload_bytes"
	DisableSecurityHeaders = "server.disable_security_headers"

	KeyDBKind = "db.kind"
	KeyDBFile = "db.file"
	KeyDBDSN  = "db.dsn"

	DBKindSQLite   = "sqlite"
	DBKindPostgres = "postgres"

	KeyStorageEndpoint      = "storage.endpoint"
	KeyStorageAccessKey     = "storage.access_key"
	KeyStorageSecretKey     = "storage.secret_key"
	KeyStorageUseSSL        = "storage.use_ssl"
	KeyStorageBucket        = "storage.bucket"
	KeyStoragePublicBaseURL = "storage.public_base_url"

	KeySMTPHost     = "smtp.host"
	KeySMTPPort     = "smtp.port"
	KeySMTPUsername = "smtp.username"
	KeySMTPPassword = "smtp.password"
	KeySMTPFrom     = "smtp.from"

	KeyAlertThreshold = "security.alert_threshold"
	KeyTrustedProxies = "security.trusted_proxies.network"
	KeyRealIPHeader   = "security.real_ip_header"

	KeyVaultQuotaBytes   = "vault.quota_bytes"
	KeyVaultExportURLTTL = "vault.export_url_ttl"

	KeyStoreTimeout  = "timeouts.store"
	KeyNotifyTimeout = "timeouts.notify"
	KeyBlobTimeout   = "timeouts.blob"
)
