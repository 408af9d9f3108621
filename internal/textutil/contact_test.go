package textutil

import "testing"

// TestContactInfo tests phone and email extraction from contact prose.
func TestContactInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantPhone string
		wantEmail string
	}{
		{
			name:      "phone and email in prose",
			text:      "Call us on 1300 302 502 or email media@example.gov.au for details",
			wantPhone: "1300 302 502",
			wantEmail: "media@example.gov.au",
		},
		{
			name:      "six digit tail grouping",
			text:      "Media team: 1300 138917",
			wantPhone: "1300 138917",
			wantEmail: "N/A",
		},
		{
			name:      "ten digit grouping",
			text:      "After hours: 0409 658 4321",
			wantPhone: "0409 658 432",
			wantEmail: "N/A",
		},
		{
			name:      "first phone wins",
			text:      "Primary 1300 302 502, secondary 1800 931 678",
			wantPhone: "1300 302 502",
			wantEmail: "N/A",
		},
		{
			name:      "first email wins",
			text:      "media@accc.gov.au or general@accc.gov.au",
			wantPhone: "N/A",
			wantEmail: "media@accc.gov.au",
		},
		{
			name:      "nothing extractable",
			text:      "Visit our office during business hours.",
			wantPhone: "N/A",
			wantEmail: "N/A",
		},
		{
			name:      "empty text",
			text:      "",
			wantPhone: "N/A",
			wantEmail: "N/A",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			phone, email := ContactInfo(tt.text)
			if phone != tt.wantPhone {
				t.Errorf("ContactInfo(%q) phone = %q, want %q", tt.text, phone, tt.wantPhone)
			}
			if email != tt.wantEmail {
				t.Errorf("ContactInfo(%q) email = %q, want %q", tt.text, email, tt.wantEmail)
			}
		})
	}
}
