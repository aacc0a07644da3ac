package errors

import (
	"strings"
	"testing"
)

func TestValidateWindowID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "0x4a00007", false},
		{"uuid style", "9b2f6c1e-4d3a-4f00-b1c2-9e8d7a6b5c4d", false},
		{"empty", "", true},
		{"whitespace", "win 1", true},
		{"tab", "win\t1", true},
		{"control character", "win\x00", true},
		{"newline", "win\n1", true},
		{"too long", strings.Repeat("a", 257), true},
		{"max length", strings.Repeat("a", 256), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindowID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWindowID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidWindow {
				t.Errorf("code = %q, want %q", GetCode(err), ErrCodeInvalidWindow)
			}
		})
	}
}

func TestValidateScreenName(t *testing.T) {
	tests := []struct {
		name    string
		screen  string
		wantErr bool
	}{
		{"typical", "DP-1", false},
		{"hdmi", "HDMI-A-2", false},
		{"with space", "Built-in Display", false},
		{"empty", "", true},
		{"control character", "DP\x1b1", true},
		{"forward slash", "DP/1", true},
		{"backslash", `DP\1`, true},
		{"too long", strings.Repeat("s", 129), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScreenName(tt.screen)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScreenName(%q) error = %v, wantErr %v", tt.screen, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidScreen {
				t.Errorf("code = %q, want %q", GetCode(err), ErrCodeInvalidScreen)
			}
		})
	}
}
