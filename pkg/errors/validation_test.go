package errors

import "testing"

func TestValidateModuleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Simple", "os", false},
		{"Dotted", "os.path", false},
		{"DeepDotted", "a.b.c.d", false},
		{"Underscore", "my_pkg.sub_mod", false},
		{"Empty", "", true},
		{"EmptySegment", "a..b", true},
		{"LeadingDot", ".relative", true},
		{"TrailingDot", "pkg.", true},
		{"Slash", "os/path", true},
		{"Backslash", `os\path`, true},
		{"NullByte", "os\x00path", true},
		{"ControlChar", "os\npath", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModuleName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateModuleName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidModule) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidModule)
			}
		})
	}
}

func TestValidateSearchPath(t *testing.T) {
	if err := ValidateSearchPath("./src"); err != nil {
		t.Errorf("ValidateSearchPath(./src) = %v", err)
	}
	if err := ValidateSearchPath(""); err == nil {
		t.Error("ValidateSearchPath(\"\") = nil, want error")
	}
	if err := ValidateSearchPath("a\x00b"); err == nil {
		t.Error("ValidateSearchPath with null byte = nil, want error")
	}
}
