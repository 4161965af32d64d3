package main

import (
	"testing"
)

func TestValidateUpstream(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://github.com/compound-finance/substrate.git", false},
		{"git@github.com:compound-finance/substrate.git", false},
		{"ssh://git@github.com/org/repo.git", false},
		{"", true},
		{"   ", true},
		{"not a url", true},
		{"substrate", true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := validateUpstream(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateUpstream(%q) = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSource(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"../substrate", false},
		{"forks/substrate", false},
		{"/abs/checkout", false},
		{"", true},
		{"has space", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validateSource(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSource(%q) = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultSourceFromUpstream(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/compound-finance/substrate.git", "../substrate"},
		{"https://github.com/compound-finance/substrate", "../substrate"},
		{"git@github.com:compound-finance/substrate.git", "../substrate"},
		{"https://gitlab.com/group/subgroup/fork.git", "../fork"},
		{"https://github.com/org/my-repo/", "../my-repo"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got := defaultSourceFromUpstream(tt.url)
			if got != tt.want {
				t.Errorf("defaultSourceFromUpstream(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
