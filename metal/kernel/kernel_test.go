package kernel

import (
	"os"
	"testing"

	"github.com/inkpress/metal/env"
	"github.com/inkpress/pkg/portal"
)

// envSecretsDirForTest points the secrets lookup at an empty directory so the
// ENV_* vars set by the test always win. It returns a restore func.
func envSecretsDirForTest(t *testing.T) func() {
	t.Helper()

	old := env.SecretsDir
	env.SecretsDir = t.TempDir()

	return func() {
		env.SecretsDir = old
	}
}

func validEnvVars(t *testing.T) {
	t.Setenv("ENV_APP_NAME", "inkpress")
	t.Setenv("ENV_APP_URL", "http://localhost:8080")
	t.Setenv("ENV_APP_ENV_TYPE", "local")
	t.Setenv("ENV_DB_USER_NAME", "usernamefoo")
	t.Setenv("ENV_DB_USER_PASSWORD", "passwordfoo")
	t.Setenv("ENV_DB_DATABASE_NAME", "dbnamefoo")
	t.Setenv("ENV_DB_PORT", "5432")
	t.Setenv("ENV_DB_HOST", "localhost")
	t.Setenv("ENV_DB_SSL_MODE", "require")
	t.Setenv("ENV_DB_TIMEZONE", "UTC")
	t.Setenv("ENV_APP_LOG_LEVEL", "debug")
	t.Setenv("ENV_APP_LOGS_DIR", "logs_%s.log")
	t.Setenv("ENV_APP_LOGS_DATE_FORMAT", "2006_01_02")
	t.Setenv("ENV_HTTP_HOST", "localhost")
	t.Setenv("ENV_HTTP_PORT", "8080")
	t.Setenv("ENV_PING_USERNAME", "pinguser")
	t.Setenv("ENV_PING_PASSWORD", "pingpassword")
	t.Setenv("ENV_MEDIA_FTP_HOST", "ftp.example.test")
	t.Setenv("ENV_MEDIA_FTP_USER", "mediauser")
	t.Setenv("ENV_MEDIA_FTP_PASSWORD", "mediapass")
	t.Setenv("ENV_MEDIA_BASE_URL", "https://cdn.example.test")
}

func TestMakeEnv(t *testing.T) {
	validEnvVars(t)

	// Secrets files take precedence over env vars; make sure none exist here.
	old := envSecretsDirForTest(t)
	defer old()

	env := MakeEnv(portal.MakeValidator())

	if env.App.Name != "inkpress" {
		t.Fatalf("env not loaded")
	}

	if env.Media.FtpHost != "ftp.example.test" || env.Media.GetAddress() != "ftp.example.test:21" {
		t.Fatalf("media env not loaded: %+v", env.Media)
	}

	if missing := env.Media.MissingSettings(); len(missing) != 0 {
		t.Fatalf("expected a complete media config, missing %v", missing)
	}
}

func TestIgnite(t *testing.T) {
	content := "ENV_APP_NAME=inkpress\n" +
		"ENV_APP_URL=http://localhost:8080\n" +
		"ENV_APP_ENV_TYPE=local\n" +
		"ENV_DB_USER_NAME=usernamefoo\n" +
		"ENV_DB_USER_PASSWORD=passwordfoo\n" +
		"ENV_DB_DATABASE_NAME=dbnamefoo\n" +
		"ENV_DB_PORT=5432\n" +
		"ENV_DB_HOST=localhost\n" +
		"ENV_DB_SSL_MODE=require\n" +
		"ENV_DB_TIMEZONE=UTC\n" +
		"ENV_APP_LOG_LEVEL=debug\n" +
		"ENV_APP_LOGS_DIR=logs_%s.log\n" +
		"ENV_APP_LOGS_DATE_FORMAT=2006_01_02\n" +
		"ENV_HTTP_HOST=localhost\n" +
		"ENV_HTTP_PORT=8080\n" +
		"ENV_PING_USERNAME=pinguser\n" +
		"ENV_PING_PASSWORD=pingpassword\n"

	old := envSecretsDirForTest(t)
	defer old()

	f, err := os.CreateTemp("", "envfile")
	if err != nil {
		t.Fatalf("temp file err: %v", err)
	}

	defer os.Remove(f.Name())

	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("close env file: %v", err)
	}

	env, err := Ignite(f.Name(), portal.MakeValidator())
	if err != nil {
		t.Fatalf("ignite err: %v", err)
	}

	if env.Network.HttpPort != "8080" {
		t.Fatalf("env not loaded")
	}
}

func TestIgniteMissingFile(t *testing.T) {
	if _, err := Ignite("/does/not/exist/.env", portal.MakeValidator()); err == nil {
		t.Fatal("expected an error for a missing env file")
	}
}

func TestAppBootNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		}
	}()

	var a *App
	a.Boot()
}
