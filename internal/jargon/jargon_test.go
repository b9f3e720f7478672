package jargon

import "testing"

func TestWrap(t *testing.T) {
	const template = "HEADER\nINSERT_HERE\nFOOTER"
	const key = "ENTRY("

	tests := []struct {
		name     string
		code     string
		template string
		key      string
		want     string
	}{
		{
			name:     "no jargon defined",
			code:     "x();",
			template: "",
			key:      "",
			want:     "x();",
		},
		{
			name:     "key present leaves code unchanged",
			code:     "ENTRY() { x(); }",
			template: template,
			key:      key,
			want:     "ENTRY() { x(); }",
		},
		{
			name:     "key absent wraps code",
			code:     "x();",
			template: template,
			key:      key,
			want:     "HEADER\nx();\nFOOTER",
		},
		{
			name:     "key in string literal still suppresses wrap",
			code:     `print("ENTRY(")`,
			template: template,
			key:      key,
			want:     `print("ENTRY(")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.code, tt.template, tt.key)
			if got != tt.want {
				t.Errorf("Wrap() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapReplacesSingleMarker(t *testing.T) {
	got := Wrap("body", "INSERT_HERE and INSERT_HERE", "never")
	want := "body and INSERT_HERE"
	if got != want {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		key      string
		wantErr  bool
	}{
		{"valid", "int main() {\nINSERT_HERE\n}", "int main(", false},
		{"missing marker", "int main() {\n}", "int main(", true},
		{"empty key", "INSERT_HERE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.template, tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnwrapCodeBlock(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCode  string
		wantStdin string
	}{
		{
			name:      "no fence",
			input:     "print(1)",
			wantCode:  "print(1)",
			wantStdin: "",
		},
		{
			name:      "fenced with trailing stdin",
			input:     "```\ncode line\n```trailing",
			wantCode:  "code line",
			wantStdin: "trailing",
		},
		{
			name:      "opening fence only",
			input:     "```\ncode line",
			wantCode:  "code line",
			wantStdin: "",
		},
		{
			name:      "fence on same line as code",
			input:     "```code line```",
			wantCode:  "code line",
			wantStdin: "",
		},
		{
			name:      "multi-line body",
			input:     "```\na\nb\n```\ninput text",
			wantCode:  "a\nb",
			wantStdin: "\ninput text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdin := UnwrapCodeBlock(tt.input)
			if code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
			if stdin != tt.wantStdin {
				t.Errorf("stdin = %q, want %q", stdin, tt.wantStdin)
			}
		})
	}
}
