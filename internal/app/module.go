package app

import (
	"log/slog"
	"os"

	"github.com/fastkeycloak/otpstep/internal/otpstep"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.otpstep.enabled") {
		if err := otpstep.New(otpstep.Dependency{
			CacheConn:  a.cacheConn,
			Router:     a.router,
			Mail:       a.mail,
			Config:     a.config,
			Instrument: a.ins,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module otpstep", "error", err)
			os.Exit(1)
		}
	}
}
