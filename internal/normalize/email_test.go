package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "already normalized",
			in:   "ann@test.com",
			want: "ann@test.com",
		},
		{
			name: "mixed case and spaces",
			in:   "  Ann.Smith@Test.COM ",
			want: "ann.smith@test.com",
		},
		{
			name:    "missing at",
			in:      "ann.test.com",
			wantErr: true,
		},
		{
			name:    "empty local part",
			in:      "@test.com",
			wantErr: true,
		},
		{
			name:    "empty domain",
			in:      "ann@",
			wantErr: true,
		},
		{
			name:    "empty",
			in:      "   ",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Email(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Email() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Email() = %q, want %q", got, tt.want)
			}
		})
	}
}
