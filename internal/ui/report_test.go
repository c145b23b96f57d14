package ui

import (
	"strings"
	"testing"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/clean"
	"github.com/lakshaymaurya-felt/pccleaner/internal/sweep"
)

func TestSummary(t *testing.T) {
	steam := catalog.Target{ID: catalog.Steam, Host: "Steam"}

	tests := []struct {
		name   string
		report clean.Report
		want   string
	}{
		{
			name:   "refused without elevation",
			report: clean.Report{Target: catalog.Target{ID: catalog.GeneralCache, Host: "Windows"}, Refused: true},
			want:   "Administrator privileges are required to clean Windows.",
		},
		{
			name:   "not installed",
			report: clean.Report{Target: steam, Status: catalog.NotInstalled},
			want:   "Steam is not installed.",
		},
		{
			name:   "empty directory list",
			report: clean.Report{Target: steam, Status: catalog.Available},
			want:   "Nothing to clean.",
		},
		{
			name: "everything locked",
			report: clean.Report{Target: steam, Result: sweep.Result{
				ItemsFailed: 4, TotalCandidates: 4,
			}},
			want: "No files were removed.",
		},
		{
			name: "partial",
			report: clean.Report{Target: steam, Result: sweep.Result{
				ItemsDeleted: 3, ItemsFailed: 2, TotalCandidates: 5, BytesReclaimed: 1536,
			}},
			want: "3 items removed. Total size: 1.5 KB",
		},
		{
			name: "thousands",
			report: clean.Report{Target: steam, Result: sweep.Result{
				ItemsDeleted: 12345, TotalCandidates: 12345, BytesReclaimed: 3 * 1024 * 1024 * 1024,
			}},
			want: "12,345 items removed. Total size: 3 GB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.report); got != tt.want {
				t.Errorf("Summary() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestElevationMessage(t *testing.T) {
	got := ElevationMessage(catalog.Target{ID: catalog.GeneralCache, Host: "Windows"})
	want := "Administrator privileges are required to clean Windows."
	if got != want {
		t.Errorf("ElevationMessage() = %q, expected %q", got, want)
	}
}

func TestRenderReportsTotal(t *testing.T) {
	reports := []clean.Report{
		{Target: catalog.Target{ID: catalog.Steam, Host: "Steam"}, Result: sweep.Result{
			ItemsDeleted: 2, TotalCandidates: 2, BytesReclaimed: 1024,
		}},
		{Target: catalog.Target{ID: catalog.Discord, Host: "Discord"}, Result: sweep.Result{
			ItemsDeleted: 1, TotalCandidates: 1, BytesReclaimed: 1024,
		}},
	}

	out := RenderReports(reports)
	if !strings.Contains(out, "3 items removed. Total size: 2 KB") {
		t.Errorf("missing grand total in:\n%s", out)
	}

	single := RenderReports(reports[:1])
	if strings.Contains(single, "Total ") {
		t.Errorf("unexpected grand total for a single report:\n%s", single)
	}
}

func TestRenderReportRefused(t *testing.T) {
	out := RenderReport(clean.Report{
		Target:  catalog.Target{ID: catalog.WindowsUpdate, Host: "Windows Update", RequiresAdmin: true},
		Refused: true,
	})
	for _, want := range []string{"WindowsUpdate", "Administrator privileges are required to clean Windows Update.", "admin"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}
