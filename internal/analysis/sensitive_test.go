package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSensitive(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		sensitive bool
	}{
		{"env file", ".env", true},
		{"env file in subdirectory", "secrets/.env", true},
		{"named env file", "deploy/production.env", true},
		{"private key", "certs/server.pem", true},
		{"key file", "id_rsa.key", true},
		{"certificate", "tls.cert", true},
		{"pkcs12 bundle", "client.p12", true},
		{"pfx bundle", "client.pfx", true},
		{"credentials fragment", "aws/credentials.ini", true},
		{"secret fragment", "k8s/secret-store.yaml", true},
		{"password fragment", "passwords.txt", true},
		{"token fragment", "api_tokens.yaml", true},
		{"config.json", "app/config.json", true},
		{"settings.json", ".vscode/settings.json", true},
		{"htpasswd", ".htpasswd", true},
		{"netrc", ".netrc", true},
		{"sql dump", "backup/users.sql", true},
		{"sqlite database", "data/app.sqlite", true},
		{"db file", "cache.db", true},
		{"log file", "server.log", true},
		{"bak file", "main.go.bak", true},
		{"backup file", "site.backup", true},
		{"vim swap file", ".main.go.swp", true},
		{"uppercase extension", "SERVER.PEM", true},

		{"go source", "internal/auth/auth.go", false},
		{"python source", "auth.py", false},
		{"markdown", "README.md", false},
		{"plain yaml", "ci/build.yaml", false},
		{"test file", "auth_test.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sensitive, IsSensitive(tt.path))
		})
	}
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "[SENSITIVE FILE EXCLUDED] secrets/.env", Redact("secrets/.env"))
}
