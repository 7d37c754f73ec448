package phone

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		countryCode string
		want        string
	}{
		{
			name:        "InternationalDoubleZeroPrefix",
			raw:         "0049 176 1234567",
			countryCode: "+49",
			want:        "+491761234567",
		},
		{
			name:        "CountryCodeWithoutPlus",
			raw:         "49 176 1234567",
			countryCode: "+49",
			want:        "+491761234567",
		},
		{
			name:        "NationalFormatWithDash",
			raw:         "0176-1234567",
			countryCode: "+49",
			want:        "+491761234567",
		},
		{
			name:        "NoRuleMatchGetsPlusPrefix",
			raw:         "1761234567",
			countryCode: "+49",
			want:        "+1761234567",
		},
		{
			name:        "AlreadyNormalized",
			raw:         "+491761234567",
			countryCode: "+49",
			want:        "+491761234567",
		},
		{
			name:        "ParenthesesAndSpaces",
			raw:         "(0176) 123 4567",
			countryCode: "+49",
			want:        "+491761234567",
		},
		{
			name:        "EmptyCountryCodeReturnsRaw",
			raw:         "0176-1234567",
			countryCode: "",
			want:        "0176-1234567",
		},
		{
			name:        "CountryCodeWithoutPlusSign",
			raw:         "0176 1234567",
			countryCode: "49",
			want:        "+491761234567",
		},
		{
			name:        "USDefault",
			raw:         "1 (555) 123-4567",
			countryCode: "+1",
			want:        "+15551234567",
		},
		{
			name:        "USWithoutCountryDigit",
			raw:         "(555) 123-4567",
			countryCode: "+1",
			want:        "+5551234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, tt.countryCode)
			if got != tt.want {
				t.Fatalf("Normalize(%q, %q) = %q, want %q", tt.raw, tt.countryCode, got, tt.want)
			}
		})
	}
}
