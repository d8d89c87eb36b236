package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResolveEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
		{envKey: "POSTGRES_MASTER_EXTRA_OPTION", want: "postgres.master.extra.option"},
		{envKey: "POSTGRES__SSLMODE", want: "postgres.sslMode"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := indexKeys(existing).resolve(tt.envKey); got != tt.want {
				t.Fatalf("resolve(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_0_PASSWORD": "secret",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// Index 2 has no port, so index 3 is never read.
		"POSTGRES_REPLICAS_2_HOST": "replica-c",
		"POSTGRES_REPLICAS_3_HOST": "replica-d",
		"POSTGRES_REPLICAS_3_PORT": "5435",
	}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]

		return value, ok
	}

	replicas := replicasFromEnv(lookup)
	if len(replicas) != 2 {
		t.Fatalf("len(replicas) = %d, want 2", len(replicas))
	}
	if replicas[0].Host != "replica-a" || replicas[0].UserName != "reader" || replicas[0].Password != "secret" {
		t.Fatalf("replicas[0] = %+v", replicas[0])
	}
	if replicas[1].Host != "replica-b" || replicas[1].Port != "5433" || replicas[1].UserName != "" {
		t.Fatalf("replicas[1] = %+v", replicas[1])
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
http:
  port: 8080
  timeouts:
    readTimeout: 5s
passwordStrength:
  minLength: 8
  forbiddenWords: [password]
worker:
  jobToken: from-file
`
	if err := os.WriteFile(filepath.Join(dir, "shop.yaml"), []byte(yamlBody), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORKER_JOBTOKEN", "from-env")
	t.Setenv("HTTP_TIMEOUTS_READTIMEOUT", "45s")
	t.Setenv("PASSWORDSTRENGTH_FORBIDDENWORDS", "admin,letmein")

	cfg, err := Load[Config]("shop", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Fatalf("HTTP.Port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.HTTP.Timeouts.ReadTimeout != 45*time.Second {
		t.Fatalf("ReadTimeout = %v, want 45s", cfg.HTTP.Timeouts.ReadTimeout)
	}
	if cfg.Worker == nil || cfg.Worker.JobToken != "from-env" {
		t.Fatalf("Worker = %+v, want jobToken from env", cfg.Worker)
	}
	words := cfg.PasswordStrength.ForbiddenWords
	if len(words) != 2 || words[0] != "admin" || words[1] != "letmein" {
		t.Fatalf("ForbiddenWords = %v", words)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load[Config]("absent", t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
