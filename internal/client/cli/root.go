package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/auctionhub/internal/client/controller"
)

func (a *App) getStatus() string {
	s := ""
	if u := a.session.CurrentUser(); u != nil {
		s = u.Username + " "
	}
	if m := a.currentMode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, starts the health check watcher, shows the home
// screen and runs the REPL until exit or ctx is done.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to auctionhub (type 'help' for commands)")
	if u := a.session.CurrentUser(); u != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s", u.Username))
	}

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.HealthInterval)

	a.Navigate(controller.PathHome, nil)
	a.settle(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}
