// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers = []string{"sqlite", "postgres"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.String("config", "", "path to the config file (default ./config.toml)")
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port", "port")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("admin.username", "admin_username")
	v.BindEnv("admin.password", "admin_password")
	v.BindEnv("admin.password_hash", "admin_password_hash")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn", "pg_connection_string")

	v.BindEnv("storage.type", "storage_type")
	v.BindEnv("storage.upload_dir", "storage_upload_dir")

	v.BindEnv("upload.max_size", "upload_max_size")
	v.BindEnv("upload.allowed_types", "upload_allowed_types")

	v.BindEnv("cors.allowed_origins", "cors_allowed_origins")

	v.BindEnv("ratelimit.enabled", "ratelimit_enabled")
	v.BindEnv("ratelimit.rps", "ratelimit_rps")
	v.BindEnv("ratelimit.burst", "ratelimit_burst")

	v.BindEnv("s3.region", "s3_region")
	v.BindEnv("s3.bucket", "s3_bucket")
	v.BindEnv("s3.access_key_id", "s3_access_key_id")
	v.BindEnv("s3.secret_access_key", "s3_secret_access_key")
	v.BindEnv("s3.public_url", "s3_public_url")

	//
	// DEFAULTS
	//
	v.SetDefault("app.log_level", "info")
	v.SetDefault("host.port", 5000)
	v.SetDefault("host.ssl.enabled", false)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "database.db")
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.upload_dir", "uploads")
	v.SetDefault("upload.max_size", 25)
	v.SetDefault("cors.allowed_origins", []string{
		"https://tanzimportfolio.web.app",
		"https://portfolio-tfli.onrender.com",
	})
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.rps", 5)
	v.SetDefault("ratelimit.burst", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound v.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetString("admin.username") == "" {
		return errors.New("admin.username can't be empty")
	}

	if v.GetString("admin.password") == "" && v.GetString("admin.password_hash") == "" {
		return errors.New("one of admin.password or admin.password_hash must be set")
	}

	if !slices.Contains(validDBDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	switch v.GetString("storage.type") {
	case "s3":
		if v.GetString("s3.region") == "" {
			return errors.New("s3 region can't be empty")
		}
		if v.GetString("s3.bucket") == "" {
			return errors.New("s3 bucket can't be empty")
		}
		if v.GetString("s3.access_key_id") == "" {
			return errors.New("s3 access key id can't be empty")
		}
		if v.GetString("s3.secret_access_key") == "" {
			return errors.New("s3 secret access key can't be empty")
		}
		if v.GetString("s3.public_url") == "" {
			return errors.New("s3 public url can't be empty")
		}
	case "local":
		if v.GetString("storage.upload_dir") == "" {
			return errors.New("upload directory can't be empty")
		}
	default:
		return errors.New("invalid storage type provided")
	}

	if v.GetInt64("upload.max_size") <= 0 {
		return errors.New("max upload size must be bigger than 0")
	}

	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
