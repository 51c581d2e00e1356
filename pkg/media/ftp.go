package media

import (
	"crypto/tls"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/inkpress/metal/env"
	"github.com/jlaffaye/ftp"
)

const dialTimeout = 10 * time.Second

type ftpTransport struct {
	conn *ftp.ServerConn
}

// DialFTP opens the FTP(S) control connection and authenticates. It is the
// default dialer wired into MakeUploader.
func DialFTP(media env.MediaEnvironment) (Transport, error) {
	options := []ftp.DialOption{
		ftp.DialWithTimeout(dialTimeout),
	}

	if media.FtpSecure {
		options = append(options, ftp.DialWithExplicitTLS(&tls.Config{
			ServerName: media.FtpHost,
		}))
	}

	conn, err := ftp.Dial(media.GetAddress(), options...)
	if err != nil {
		return nil, fmt.Errorf("connect to media server %s: %w", media.GetAddress(), err)
	}

	if err := conn.Login(media.FtpUser, media.FtpPassword); err != nil {
		_ = conn.Quit()

		return nil, fmt.Errorf("authenticate against media server: %w", err)
	}

	return &ftpTransport{conn: conn}, nil
}

// EnsureDir walks the path one segment at a time, creating missing segments.
// MakeDir errors are ignored since the segment usually exists already; the
// follow-up ChangeDir is what decides success.
func (t *ftpTransport) EnsureDir(dir string) error {
	for _, segment := range strings.Split(strings.Trim(dir, "/"), "/") {
		if segment == "" {
			continue
		}

		_ = t.conn.MakeDir(segment)

		if err := t.conn.ChangeDir(segment); err != nil {
			return fmt.Errorf("enter remote directory %s: %w", segment, err)
		}
	}

	return nil
}

func (t *ftpTransport) Store(name string, content io.Reader) error {
	return t.conn.Stor(name, content)
}

func (t *ftpTransport) Reset() error {
	return t.conn.ChangeDir("/")
}

func (t *ftpTransport) Quit() error {
	return t.conn.Quit()
}
