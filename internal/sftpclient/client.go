package sftpclient

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	appConfig "sftpsync/config"
	"sftpsync/internal/syncer"
)

// ErrConnect marks a failure to establish the remote session. It is fatal
// to the whole run; no retry is attempted.
var ErrConnect = errors.New("cannot establish sftp session")

// Client is one authenticated SSH+SFTP session, scoped to a single run.
type Client struct {
	conn *ssh.Client
	sftp *sftp.Client
}

var _ syncer.Remote = (*Client)(nil)

// New dials the remote host and opens an SFTP subsystem session over it.
// Host key verification is intentionally not performed; the tool targets
// managed transfer endpoints addressed by configuration.
func New(cfg *appConfig.Config) (*Client, error) {
	addr := net.JoinHostPort(cfg.Server, strconv.Itoa(cfg.Port))
	conn, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            cfg.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         cfg.ConnectTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnect, addr, err)
	}
	cli, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrConnect, addr, err)
	}
	return &Client{conn: conn, sftp: cli}, nil
}

func (c *Client) Close() error {
	c.sftp.Close()
	return c.conn.Close()
}

func (c *Client) Stat(path string) (os.FileInfo, error) {
	return c.sftp.Stat(path)
}

func (c *Client) List(dir string) ([]os.FileInfo, error) {
	return c.sftp.ReadDir(dir)
}

func (c *Client) Open(path string) (io.ReadCloser, error) {
	f, err := c.sftp.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (c *Client) Rename(oldPath, newPath string) error {
	return c.sftp.Rename(oldPath, newPath)
}

func (c *Client) Remove(path string) error {
	return c.sftp.Remove(path)
}

func (c *Client) Realpath(path string) (string, error) {
	return c.sftp.RealPath(path)
}
