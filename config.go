package portfolio

import "github.com/jlang-dev/go-portfolio/internal/runtimeconfig"

var (
	ErrContentDirRequired        = runtimeconfig.ErrContentDirRequired
	ErrEmailConfigIncomplete     = runtimeconfig.ErrEmailConfigIncomplete
	ErrEmailRecipientRequired    = runtimeconfig.ErrEmailRecipientRequired
	ErrAnalyticsEndpointRequired = runtimeconfig.ErrAnalyticsEndpointRequired
	ErrServerAddrRequired        = runtimeconfig.ErrServerAddrRequired
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	ContentConfig   = runtimeconfig.ContentConfig
	EmailConfig     = runtimeconfig.EmailConfig
	AnalyticsConfig = runtimeconfig.AnalyticsConfig
	ResumeConfig    = runtimeconfig.ResumeConfig
	ServerConfig    = runtimeconfig.ServerConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
