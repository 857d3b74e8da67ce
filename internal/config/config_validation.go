package config

// setDefaults fills in package defaults for fields left unset by every
// configuration source. Called once by the builder before validation.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.TokenAlgorithm == "" {
		cfg.App.TokenAlgorithm = DefaultTokenAlgorithm
	}
	if cfg.App.AccessTokenTTL == 0 {
		cfg.App.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if cfg.App.RefreshTokenTTL == 0 {
		cfg.App.RefreshTokenTTL = DefaultRefreshTokenTTL
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	// The single-secret design assumes symmetric HMAC signing; any other
	// algorithm is a misconfiguration, not a choice.
	if cfg.App.TokenAlgorithm != DefaultTokenAlgorithm {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AccessTokenTTL <= 0 || cfg.App.RefreshTokenTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
