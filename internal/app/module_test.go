package app

import (
	"testing"

	"github.com/fastkeycloak/otpstep/internal/pkg/config"
)

func TestInitModulesDisabled(t *testing.T) {
	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  otpstep:\n    enabled: false\n"))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	// With the module disabled, registration must not run at all. A missing
	// gate would hit dependency validation on the nil fields and exit.
	a := &App{config: cfg}
	a.initModules()
}
