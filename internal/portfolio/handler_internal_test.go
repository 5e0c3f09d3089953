package portfolio

import "testing"

func TestAttachmentDispositionASCII(t *testing.T) {
	got := attachmentDisposition("My_Portfolio_Resume.pdf")
	if got != `attachment; filename="My_Portfolio_Resume.pdf"` {
		t.Fatalf("unexpected disposition: %s", got)
	}
}

func TestAttachmentDispositionUnicode(t *testing.T) {
	got := attachmentDisposition("Lebenslauf Müller.pdf")
	want := `attachment; filename="Lebenslauf M_ller.pdf"; filename*=UTF-8''Lebenslauf%20M%C3%BCller.pdf`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
