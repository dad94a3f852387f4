package modules

import (
	"os"
	"strings"
	"testing"

	"tenantforge.io/tenantforge/ent"
)

func TestNewOnboardingModule_RequiresInfraDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		infra *Infrastructure
		dir   *DirectoryModule
	}{
		{name: "nil infra", infra: nil, dir: &DirectoryModule{}},
		{name: "missing all core deps", infra: &Infrastructure{}, dir: &DirectoryModule{}},
		{name: "missing pool and river", infra: &Infrastructure{EntClient: &ent.Client{}}, dir: &DirectoryModule{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewOnboardingModule(tc.infra, tc.dir); err == nil {
				t.Fatalf("NewOnboardingModule(%s) expected error, got nil", tc.name)
			}
		})
	}
}

func TestOnboardingModule_WiringContract(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("onboarding.go")
	if err != nil {
		t.Fatalf("read onboarding.go: %v", err)
	}
	text := string(src)

	required := []string{
		"usecase.NewCompleteOnboardingUseCase(",
		"jobs.NewReconcileEnqueuer(",
		"WithActivityRecorder(",
		"WithWelcomeNotifier(",
		"usecase.NewGetOnboardingStatusUseCase(",
	}
	for _, fragment := range required {
		if !strings.Contains(text, fragment) {
			t.Fatalf("onboarding module missing required wiring fragment %q", fragment)
		}
	}
}

func TestDirectoryModule_WiringContract(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("directory.go")
	if err != nil {
		t.Fatalf("read directory.go: %v", err)
	}
	text := string(src)

	required := []string{
		"directory.NewSynchronizer(",
		"saga.NewStore(",
		"notification.NewTriggers(",
		"jobs.NewOnboardingReconcileWorker(",
		"jobs.NewSagaSweepWorker(",
		"jobs.NewNotificationCleanupWorker(",
	}
	for _, fragment := range required {
		if !strings.Contains(text, fragment) {
			t.Fatalf("directory module missing required wiring fragment %q", fragment)
		}
	}
}
