package models

import "testing"

func TestAllowedProofType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		filename    string
		expected    bool
	}{
		{"png", "image/png", "proof.png", true},
		{"jpeg", "image/jpeg", "proof.jpeg", true},
		{"jpg alias", "image/jpg", "proof.jpg", true},
		{"mime wins over extension", "image/png", "proof.txt", true},
		{"uppercase mime", "IMAGE/PNG", "proof.png", true},
		{"plain text", "text/plain", "proof.txt", false},
		{"pdf", "application/pdf", "proof.pdf", false},
		{"bad mime good extension", "text/plain", "proof.png", false},
		{"no mime png extension", "", "proof.PNG", true},
		{"octet-stream jpg extension", "application/octet-stream", "proof.jpg", true},
		{"octet-stream bad extension", "application/octet-stream", "proof.gif", false},
		{"no mime no extension", "", "proof", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllowedProofType(tt.contentType, tt.filename); got != tt.expected {
				t.Errorf("AllowedProofType(%q, %q) = %v, expected %v",
					tt.contentType, tt.filename, got, tt.expected)
			}
		})
	}
}
