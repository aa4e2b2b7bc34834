package authgate

import (
	"flag"
	"testing"

	apperrors "github.com/northreach/authgate/internal/platform/errors"
)

func lookupFrom(values map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			want: Config{Port: 50051, Workers: 10},
		},
		{
			name: "env overrides defaults",
			env:  map[string]string{"AUTHGATE_PORT": "9090", "AUTHGATE_MAX_WORKERS": "32"},
			want: Config{Port: 9090, Workers: 32},
		},
		{
			name: "flags override env",
			args: []string{"-port", "7001", "-workers", "4"},
			env:  map[string]string{"AUTHGATE_PORT": "9090", "AUTHGATE_MAX_WORKERS": "32"},
			want: Config{Port: 7001, Workers: 4},
		},
		{
			name: "malformed env falls back",
			env:  map[string]string{"AUTHGATE_PORT": "not-a-number"},
			want: Config{Port: 50051, Workers: 10},
		},
		{
			name:    "port out of range",
			args:    []string{"-port", "70000"},
			wantErr: true,
		},
		{
			name:    "zero port",
			args:    []string{"-port", "0"},
			wantErr: true,
		},
		{
			name:    "non-positive workers",
			args:    []string{"-workers", "0"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("authgate", flag.ContinueOnError)
			cfg, err := ParseConfig(fs, tc.args, lookupFrom(tc.env))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if apperrors.GetCode(err) != apperrors.CodeConfigInvalid {
					t.Fatalf("expected config invalid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse config: %v", err)
			}
			if cfg != tc.want {
				t.Fatalf("config = %+v, want %+v", cfg, tc.want)
			}
		})
	}
}
