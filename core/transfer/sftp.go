package transfer

import (
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"store-sync/core/faults"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTPClient wraps an SSH/SFTP session to the backup target. Like the FTP
// client, one instance serves one logical unit of work.
type SFTPClient struct {
	cfg    SFTPConfig
	client *sftp.Client
	ssh    *ssh.Client
}

// NewSFTPClient creates an unconnected client.
func NewSFTPClient(cfg SFTPConfig) *SFTPClient {
	return &SFTPClient{cfg: cfg}
}

// Connect establishes the SSH transport and SFTP subsystem. Key-based
// authentication is used when a key file is configured, password otherwise.
func (c *SFTPClient) Connect() error {
	auth, err := c.authMethods()
	if err != nil {
		return err
	}

	timeout := time.Duration(c.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	sshConfig := &ssh.ClientConfig{
		User:            c.cfg.Username,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}

	addr := fmt.Sprintf("%s:%d", c.cfg.Hostname, c.cfg.Port)
	sshClient, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return faults.Auth("ssh dial %s as %q: %v", addr, c.cfg.Username, err)
	}

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return fmt.Errorf("open sftp subsystem on %s: %w", addr, err)
	}

	c.ssh = sshClient
	c.client = client
	return nil
}

func (c *SFTPClient) authMethods() ([]ssh.AuthMethod, error) {
	if c.cfg.KeyFile != "" {
		raw, err := os.ReadFile(c.cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("read private key %q: %w", c.cfg.KeyFile, err)
		}
		signer, err := ssh.ParsePrivateKey(raw)
		if err != nil {
			return nil, fmt.Errorf("parse private key %q: %w", c.cfg.KeyFile, err)
		}
		return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
	}
	return []ssh.AuthMethod{ssh.Password(c.cfg.Password)}, nil
}

// Upload copies a local file to remotePath, creating the remote directory
// tree first. Remote paths always use forward slashes.
func (c *SFTPClient) Upload(localPath, remotePath string) error {
	if dir := path.Dir(remotePath); dir != "." && dir != "/" {
		if err := c.client.MkdirAll(dir); err != nil {
			return fmt.Errorf("create remote directory %q: %w", dir, err)
		}
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open local file %q: %w", localPath, err)
	}
	defer src.Close()

	dst, err := c.client.Create(remotePath)
	if err != nil {
		return fmt.Errorf("create remote file %q: %w", remotePath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("upload %q: %w", remotePath, err)
	}
	return nil
}

// Close tears down the SFTP session and the SSH transport.
func (c *SFTPClient) Close() {
	if c.client != nil {
		_ = c.client.Close()
		c.client = nil
	}
	if c.ssh != nil {
		_ = c.ssh.Close()
		c.ssh = nil
	}
}
