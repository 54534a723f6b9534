package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/core/domain"
)

func TestCompilationRequest_Status(t *testing.T) {
	tests := []struct {
		status    domain.RequestStatus
		complete  bool
		succeeded bool
	}{
		{domain.StatusPending, false, false},
		{domain.StatusCompiling, false, false},
		{domain.StatusSucceeded, true, true},
		{domain.StatusFailed, true, false},
		{domain.StatusUpToDate, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			req := domain.CompilationRequest{Status: tt.status}
			assert.Equal(t, tt.complete, req.IsComplete())
			assert.Equal(t, tt.succeeded, req.HasSucceeded())
		})
	}
}

func TestCompilationRequest_Log(t *testing.T) {
	req := domain.CompilationRequest{}

	req.Fail("invalid descriptor %q", "rock.mat")
	req.Fail("Error: failed to read compile dependencies!")

	assert.True(t, req.HasFailed())
	assert.Equal(t, "invalid descriptor \"rock.mat\"\nError: failed to read compile dependencies!", req.Log)

	ok := domain.CompilationRequest{Log: "compiler output\n"}
	ok.Succeed("done")
	assert.Equal(t, "compiler output\ndone", ok.Log)
	assert.Equal(t, domain.StatusSucceeded, ok.Status)
}

func TestCompilationRequest_Durations(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	req := domain.CompilationRequest{
		UpToDateCheckStarted: start,
		CompilationStarted:   start,
	}
	assert.Zero(t, req.UpToDateCheckDuration())
	assert.Zero(t, req.CompilationDuration())

	req.UpToDateCheckFinished = start.Add(3 * time.Millisecond)
	req.CompilationFinished = start.Add(2 * time.Second)
	assert.Equal(t, 3*time.Millisecond, req.UpToDateCheckDuration())
	assert.Equal(t, 2*time.Second, req.CompilationDuration())
}

func TestRequestOrigin(t *testing.T) {
	assert.False(t, domain.OriginExternal.IsInternal())
	assert.True(t, domain.OriginManualCompile.IsInternal())
	assert.True(t, domain.OriginFileWatcher.IsInternal())
	assert.True(t, domain.OriginPackage.IsInternal())
	assert.Equal(t, "Package", domain.OriginPackage.String())
	assert.Equal(t, "RequestOrigin(9)", domain.RequestOrigin(9).String())
}

func TestCompiledResourceRecord_Matches(t *testing.T) {
	fp := domain.Fingerprint{CompilerVersion: 2, SourceTimestamp: 10, DependencyTimestampHash: 30}

	assert.False(t, domain.CompiledResourceRecord{}.IsValid())
	assert.False(t, domain.CompiledResourceRecord{Fingerprint: fp}.Matches(fp))

	record := domain.CompiledResourceRecord{ResourceID: domain.NewResourceID("data://a.tex"), Fingerprint: fp}
	assert.True(t, record.Matches(fp))

	changed := fp
	changed.DependencyTimestampHash++
	assert.False(t, record.Matches(changed))
}

func TestNotificationKind_String(t *testing.T) {
	assert.Equal(t, "Welcome", domain.NotificationWelcome.String())
	assert.Equal(t, "ResourceUpdated", domain.NotificationResourceUpdated.String())
	assert.Equal(t, "ResourceRequestComplete", domain.NotificationRequestComplete.String())
	assert.Equal(t, "Unknown", domain.NotificationKind(0).String())
}
