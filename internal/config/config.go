package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const EnvPrefix = "SAFESPACE"

var (
	Lock sync.RWMutex

	initLock  sync.Mutex
	hasInit   bool
	initError error

	updateLock      sync.Mutex
	updateCallbacks []func(fsnotify.Event)
)

func IsProductionMode() bool {
	return os.Getenv("ENVIRONMENT") == "prod"
}

func IsDebugLoggingEnabled() bool {
	return os.Getenv("DEBUG_LOG") == "true"
}

// Init reads the config file once. A missing config file is reported as a viper.ConfigFileNotFoundError
// and is not fatal since everything can be set from the environment.
func Init() error {
	initLock.Lock()
	defer initLock.Unlock()

	if hasInit {
		return initError
	}
	hasInit = true

	Lock.Lock()
	defer Lock.Unlock()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configFilePath := os.Getenv("CONFIG_FILE_PATH")
	if configFilePath == "" {
		viper.SetConfigName("safespace")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("/config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(configFilePath)
	}

	err := viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			initError = err
			return initError
		}

		log.Fatal().Str("config_file", viper.ConfigFileUsed()).Err(err).Msg("could not read config")
	}
	log.Info().Str("config_file_path", viper.ConfigFileUsed()).Msg("initialized configuration")

	viper.OnConfigChange(dispatchUpdate)
	viper.WatchConfig()

	return nil
}

// RegisterForUpdates adds a callback that runs every time the config file changes on disk
func RegisterForUpdates(f func(event fsnotify.Event)) {
	updateLock.Lock()
	defer updateLock.Unlock()

	updateCallbacks = append(updateCallbacks, f)
}

func dispatchUpdate(event fsnotify.Event) {
	log.Info().Str("file", event.Name).Str("op", event.Op.String()).Msg("config file changed")

	updateLock.Lock()
	callbacks := make([]func(fsnotify.Event), len(updateCallbacks))
	copy(callbacks, updateCallbacks)
	updateLock.Unlock()

	for _, curr := range callbacks {
		curr(event)
	}
}

func ValidateConfig() []string {
	var errorsFound []string

	switch dbKind := viper.GetString(KeyDBKind); dbKind {
	case "", DBKindSQLite:
		if viper.GetString(KeyDBFile) == "" {
			log.Error().Msg("db.file is not set")
			errorsFound = append(errorsFound, "`db.file` is not set")
		}
	case DBKindPostgres:
		if viper.GetString(KeyDBDSN) == "" {
			log.Error().Msg("db.dsn is not set")
			errorsFound = append(errorsFound, "`db.dsn` is not set")
		}
	default:
		log.Error().Str("db.kind", dbKind).Msg("invalid db kind; must be sqlite or postgres")
		errorsFound = append(errorsFound, "invalid `db.kind`; must be `sqlite` or `postgres`")
	}

	if endpoint := viper.GetString(KeyStorageEndpoint); endpoint == "" {
		log.Error().Msg("storage.endpoint is not set")
		errorsFound = append(errorsFound, "`storage.endpoint` is not set")
	}

	if bucket := viper.GetString(KeyStorageBucket); bucket == "" {
		log.Error().Msg("storage.bucket is not set")
		errorsFound = append(errorsFound, "`storage.bucket` is not set")
	}

	if publicURL := viper.GetString(KeyStoragePublicBaseURL); publicURL != "" {
		if _, err := url.ParseRequestURI(publicURL); err != nil {
			log.Error().Str("public_base_url", publicURL).Err(err).Msg("storage.public_base_url is not a valid URL")
			errorsFound = append(errorsFound, "`storage.public_base_url` is not a valid URL")
		}
	}

	if viper.GetString(KeySMTPHost) != "" && viper.GetString(KeySMTPFrom) == "" {
		log.Error().Msg("smtp.host is set but smtp.from is not")
		errorsFound = append(errorsFound, "`smtp.from` must be set when `smtp.host` is set")
	}

	if threshold := viper.GetInt(KeyAlertThreshold); threshold < 0 {
		log.Error().Int("alert_threshold", threshold).Msg("alert threshold can not be negative")
		errorsFound = append(errorsFound, fmt.Sprintf("`%s` can not be negative", KeyAlertThreshold))
	}

	if viper.GetBool(KeyTLSEnabled) && (viper.GetString(KeyTLSCertFile) == "" || viper.GetString(KeyTLSKeyFile) == "") {
		log.Error().Msg("tls is enabled but cert or key file is missing")
		errorsFound = append(errorsFound, "`server.tls.cert_file` and `server.tls.key_file` are required when TLS is enabled")
	}

	return errorsFound
}
