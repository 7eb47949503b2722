package utils

import "testing"

func TestWhatsAppLink(t *testing.T) {
	if got := WhatsAppLink("11999887766"); got != "https://wa.me/5511999887766" {
		t.Fatalf("unexpected link %q", got)
	}
	// No normalization: whatever the record holds goes into the link.
	if got := WhatsAppLink("(11) 99988-7766"); got != "https://wa.me/55(11) 99988-7766" {
		t.Fatalf("unexpected link %q", got)
	}
}

func TestDialLink(t *testing.T) {
	if got := DialLink("11999887766"); got != "tel:11999887766" {
		t.Fatalf("unexpected link %q", got)
	}
}
