package subscription

import (
	"errors"
	"testing"
	"time"

	"github.com/yardlineiq/picksserver/internal/domain"
)

func TestPolicy_EndDate(t *testing.T) {
	seasonEnd := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.September, 4, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pkg     domain.PackageType
		now     time.Time
		want    time.Time
		wantErr bool
	}{
		{
			name: "weekly",
			pkg:  domain.PackageWeekly,
			now:  now,
			want: now.Add(7 * 24 * time.Hour),
		},
		{
			name: "monthly",
			pkg:  domain.PackageMonthly,
			now:  now,
			want: now.Add(30 * 24 * time.Hour),
		},
		{
			name: "season ignores purchase time",
			pkg:  domain.PackageSeason,
			now:  now.Add(1000 * time.Hour),
			want: seasonEnd,
		},
		{
			name:    "free is not purchasable",
			pkg:     domain.PackageFree,
			now:     now,
			wantErr: true,
		},
		{
			name:    "unknown",
			pkg:     domain.PackageType("lifetime"),
			now:     now,
			wantErr: true,
		},
	}
	p := NewPolicy(seasonEnd)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := p.EndDate(tt.pkg, tt.now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EndDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidPackage) {
					t.Fatalf("EndDate() error = %v, want ErrInvalidPackage", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("EndDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolicy_EndDate_weekInSeconds(t *testing.T) {
	start := time.Unix(0, 0)
	end, err := NewPolicy(time.Time{}).EndDate(domain.PackageWeekly, start)
	if err != nil {
		t.Fatal(err)
	}
	if got := end.Unix(); got != 604800 {
		t.Errorf("weekly end = %d seconds, want 604800", got)
	}
}
