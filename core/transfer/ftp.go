package transfer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"store-sync/core/faults"

	"github.com/jlaffaye/ftp"
)

// FTPClient wraps a plain FTP connection to the legacy inventory server.
// Connections are opened for one logical unit of work and closed in a
// guaranteed-cleanup block by the caller.
type FTPClient struct {
	cfg  FTPConfig
	conn *ftp.ServerConn
}

// NewFTPClient creates an unconnected client.
func NewFTPClient(cfg FTPConfig) *FTPClient {
	return &FTPClient{cfg: cfg}
}

// Connect dials and logs in. Rejected credentials surface as an
// authentication failure and are never retried.
func (c *FTPClient) Connect() error {
	timeout := time.Duration(c.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	addr := fmt.Sprintf("%s:%d", c.cfg.Hostname, c.cfg.Port)
	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(timeout))
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	if err := conn.Login(c.cfg.Username, c.cfg.Password); err != nil {
		_ = conn.Quit()
		return faults.Auth("ftp login as %q on %s: %v", c.cfg.Username, c.cfg.Hostname, err)
	}

	c.conn = conn
	return nil
}

// Download streams a remote file into w. A "server busy" response is
// classified as transient so the caller's retry loop can back off.
func (c *FTPClient) Download(remotePath string, w io.Writer) error {
	resp, err := c.conn.Retr(remotePath)
	if err != nil {
		return classifyFTP("retrieve "+remotePath, err)
	}
	defer resp.Close()

	if _, err := io.Copy(w, resp); err != nil {
		return classifyFTP("read "+remotePath, err)
	}
	return nil
}

// List returns the names in a remote directory.
func (c *FTPClient) List(remotePath string) ([]string, error) {
	names, err := c.conn.NameList(remotePath)
	if err != nil {
		return nil, classifyFTP("list "+remotePath, err)
	}
	return names, nil
}

// Close terminates the connection. Safe to call on a failed connect.
func (c *FTPClient) Close() {
	if c.conn != nil {
		_ = c.conn.Quit()
		c.conn = nil
	}
}

func classifyFTP(op string, err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "busy") {
		return faults.Transient("%s: %v", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
