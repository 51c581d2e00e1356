package env

import "fmt"

// MediaEnvironment carries the remote file-transfer settings for uploaded
// media. It is optional at boot: the upload pipeline validates it on use so
// the rest of the API can run without an FTP endpoint configured.
type MediaEnvironment struct {
	FtpHost     string
	FtpPort     int
	FtpUser     string
	FtpPassword string
	FtpSecure   bool
	BaseURL     string
	TmpDir      string
}

func (e MediaEnvironment) GetAddress() string {
	port := e.FtpPort
	if port == 0 {
		port = 21
	}

	return fmt.Sprintf("%s:%d", e.FtpHost, port)
}

// MissingSettings reports which mandatory settings are absent. The pipeline
// refuses to start any I/O while this is non-empty.
func (e MediaEnvironment) MissingSettings() []string {
	var missing []string

	if e.FtpHost == "" {
		missing = append(missing, "ENV_MEDIA_FTP_HOST")
	}

	if e.FtpUser == "" {
		missing = append(missing, "ENV_MEDIA_FTP_USER")
	}

	if e.FtpPassword == "" {
		missing = append(missing, "ENV_MEDIA_FTP_PASSWORD")
	}

	if e.BaseURL == "" {
		missing = append(missing, "ENV_MEDIA_BASE_URL")
	}

	return missing
}

func (e MediaEnvironment) GetTmpDir() string {
	if e.TmpDir == "" {
		return "tmp"
	}

	return e.TmpDir
}
