package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/instance"
	"github.com/lakshaymaurya-felt/pccleaner/internal/ui"
)

func TestNeedsBootstrap(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{rootCmd.Name(), true},
		{cleanCmd.Name(), true},
		{listCmd.Name(), true},
		{statusCmd.Name(), true},
		{versionCmd.Name(), false},
		{completionCmd.Name(), false},
		{"help", false},
		{cobra.ShellCompRequestCmd, false},
		{cobra.ShellCompNoDescRequestCmd, false},
	}
	for _, tt := range tests {
		if got := needsBootstrap(tt.name); got != tt.want {
			t.Errorf("needsBootstrap(%q) = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestBootstrapSkipsVersion(t *testing.T) {
	current = nil
	if err := bootstrap(versionCmd, nil); err != nil {
		t.Fatalf("bootstrap(version) failed: %v", err)
	}
	if current != nil {
		t.Error("version must not build the app or take the lock")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"already running", instance.ErrAlreadyRunning, ui.MsgAlreadyRunning},
		{"already running wrapped", fmt.Errorf("startup: %w", instance.ErrAlreadyRunning), ui.MsgAlreadyRunning},
		{"unknown target", fmt.Errorf("%w: %q", catalog.ErrUnknownTarget, "Spotify"), `unknown target: "Spotify"`},
		{"other", errors.New("disk on fire"), "disk on fire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Errorf("userMessage() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestShutdownWithoutLock(t *testing.T) {
	useTestApp(t, false)
	shutdown()
	if current != nil {
		t.Error("shutdown did not clear the app")
	}
	// A second call is a no-op.
	shutdown()
}
