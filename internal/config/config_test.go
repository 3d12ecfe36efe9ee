package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{},
			want: &Config{
				FeedURL:   "https://iuedelweiss.tistory.com",
				OutputDir: "images",
				LogLevel:  "info",
			},
		},
		{
			name: "flags override defaults",
			args: []string{"-url", "https://other.example.com", "-filter", "2024/05/01", "-output", "pics", "-log-level", "debug"},
			want: &Config{
				FeedURL:   "https://other.example.com",
				Filter:    "2024/05/01",
				OutputDir: "pics",
				LogLevel:  "debug",
			},
		},
		{
			name: "environment overrides defaults",
			args: []string{},
			env: map[string]string{
				"RSSIMG_FEED_URL":   "https://env.example.com",
				"RSSIMG_OUTPUT_DIR": "env-images",
			},
			want: &Config{
				FeedURL:   "https://env.example.com",
				OutputDir: "env-images",
				LogLevel:  "info",
			},
		},
		{
			name: "flags override environment",
			args: []string{"-output", "flag-images"},
			env:  map[string]string{"RSSIMG_OUTPUT_DIR": "env-images"},
			want: &Config{
				FeedURL:   "https://iuedelweiss.tistory.com",
				OutputDir: "flag-images",
				LogLevel:  "info",
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"-nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
