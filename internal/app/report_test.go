package app_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
)

func TestReport_Requests(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reqs := []domain.CompilationRequest{
		{
			ResourceID:          domain.NewResourceID("data://textures/a.tex"),
			Status:              domain.StatusSucceeded,
			CompilationStarted:  start,
			CompilationFinished: start.Add(1500 * time.Millisecond),
		},
		{
			ResourceID: domain.NewResourceID("data://maps/level.map"),
			Status:     domain.StatusUpToDate,
			Log:        "Resource up to date! (/raw/maps/level.map)",
		},
		{
			ResourceID: domain.NewResourceID("data://textures/broken.tex"),
			Status:     domain.StatusFailed,
			Log:        "compiler output\nError: Compiler exited with code 3\n",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, app.NewReport(&buf).Requests(reqs))

	g := goldie.New(t)
	g.Assert(t, "report_requests", buf.Bytes())
}

func TestReport_Requests_Empty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, app.NewReport(&buf).Requests(nil))

	g := goldie.New(t)
	g.Assert(t, "report_empty", buf.Bytes())
}

func TestReport_Responses(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	msgs := []domain.ResourceNotification{
		{
			Kind:       domain.NotificationRequestComplete,
			ClientID:   1,
			ResourceID: "data://textures/a.tex",
			FilePath:   "/compiled/textures/a.tex",
		},
		{
			Kind:       domain.NotificationRequestComplete,
			ClientID:   1,
			ResourceID: "data://textures/broken.tex",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, app.NewReport(&buf).Responses(msgs))

	g := goldie.New(t)
	g.Assert(t, "report_responses", buf.Bytes())
}

func TestReport_Maps(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	available := []domain.ResourceID{
		domain.NewResourceID("data://maps/arena.map"),
		domain.NewResourceID("data://maps/level.map"),
	}
	selected := []domain.ResourceID{domain.NewResourceID("data://maps/arena.map")}

	var buf bytes.Buffer
	require.NoError(t, app.NewReport(&buf).Maps(available, selected))

	g := goldie.New(t)
	g.Assert(t, "report_maps", buf.Bytes())
}
