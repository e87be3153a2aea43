package mailer

// Config holds configuration for the SMTP report channel.
type Config struct {
	// Host is the SMTP server address.
	Host string `mapstructure:"host" default:"smtp.gmail.com"`
	// Port is the SMTP server port.
	Port int `mapstructure:"port" default:"587"`
	// Sender is the address reports are sent from.
	Sender string `mapstructure:"sender" default:""`
	// Password is the app password for SMTP authentication.
	Password string `mapstructure:"password" default:""`
	// Recipient overrides every store recipient outside production, so
	// test runs never mail real store contacts.
	Recipient string `mapstructure:"recipient" default:""`
}
