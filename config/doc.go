// Package config loads service configuration with viper.
//
// LoadConfig reads a YAML file (explicit or found in the standard
// locations), loads a .env file into the environment, then lets environment
// variables override file values. SERVER_PORT addresses server.port;
// WithEnvPrefix restricts binding to variables such as ERRKIT_SERVER_PORT.
//
// # Usage
//
//	var cfg Config
//	if err := config.LoadConfig("errkit", &cfg, config.WithEnvPrefix("ERRKIT")); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// The errors section declares application error kinds that are merged into
// the standard catalog at startup:
//
//	errors:
//	  custom:
//	    - name: QuotaExceededError
//	      status_code: 429
//	      code: ERR_QUOTA_EXCEEDED
//	      message: "quota of %d requests exceeded"
package config
