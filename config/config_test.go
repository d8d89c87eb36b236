package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := new(Config)
	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL || cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("token TTLs = %v/%v", cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	}
	if cfg.Storage.MaxImageBytes != defaultMaxImageBytes {
		t.Fatalf("MaxImageBytes = %d, want %d", cfg.Storage.MaxImageBytes, defaultMaxImageBytes)
	}
	if cfg.Coupon.ExpiringWindow != defaultExpiringWindow {
		t.Fatalf("ExpiringWindow = %v, want %v", cfg.Coupon.ExpiringWindow, defaultExpiringWindow)
	}
	if cfg.Postgres == nil || cfg.PubSub == nil || cfg.Worker == nil {
		t.Fatal("expected non-nil postgres, pubsub and worker sections")
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{MaxImageBytes: 1024},
		Coupon:  &CouponConfig{ExpiringWindow: 48 * time.Hour},
	}
	applyDefaults(cfg)

	if cfg.Storage.MaxImageBytes != 1024 {
		t.Fatalf("MaxImageBytes = %d, want 1024", cfg.Storage.MaxImageBytes)
	}
	if cfg.Coupon.ExpiringWindow != 48*time.Hour {
		t.Fatalf("ExpiringWindow = %v, want 48h", cfg.Coupon.ExpiringWindow)
	}
}
