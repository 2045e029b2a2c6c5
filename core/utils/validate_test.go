package utils

import "testing"

func TestValidateUsername(t *testing.T) {
	if err := ValidateUsername("ana.souza"); err != nil {
		t.Fatalf("valid username rejected: %v", err)
	}
	if err := ValidateUsername("a"); err == nil {
		t.Fatal("short username accepted")
	}
	if err := ValidateUsername("ana souza"); err == nil {
		t.Fatal("username with space accepted")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"edição março.pdf":  "edio_maro.pdf",
		"../../etc/passwd":  "passwd",
		"relatório q1.docx": "relatrio_q1.docx",
		"   ":               "arquivo",
		"ok-name_1.txt":     "ok-name_1.txt",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFileExtension(t *testing.T) {
	if got := FileExtension("Jornal.PDF"); got != "pdf" {
		t.Fatalf("unexpected extension: %q", got)
	}
	if got := FileExtension("semextensao"); got != "" {
		t.Fatalf("expected empty extension, got %q", got)
	}
}
