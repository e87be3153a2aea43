package transfer

// FTPConfig holds configuration for the legacy inventory FTP server.
type FTPConfig struct {
	// Hostname is the FTP server host.
	Hostname string `mapstructure:"hostname" default:""`
	// Username for authentication (empty for anonymous).
	Username string `mapstructure:"username" default:""`
	// Password for authentication (empty for anonymous).
	Password string `mapstructure:"password" default:""`
	// Port is the FTP control port.
	Port int `mapstructure:"port" default:"21"`
	// TimeoutSeconds is the dial timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// SFTPConfig holds configuration for the backup SFTP target (NAS).
type SFTPConfig struct {
	// Hostname is the SFTP server host.
	Hostname string `mapstructure:"hostname" default:""`
	// Username for authentication.
	Username string `mapstructure:"username" default:""`
	// Password for password authentication. Ignored when KeyFile is set.
	Password string `mapstructure:"password" default:""`
	// KeyFile is the path to a private key for key-based authentication.
	KeyFile string `mapstructure:"key_file" default:""`
	// Port is the SSH port.
	Port int `mapstructure:"port" default:"22"`
	// RemoteDir is the base directory for location backups.
	RemoteDir string `mapstructure:"remote_dir" default:"inventory_backup"`
	// TimeoutSeconds is the dial timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
