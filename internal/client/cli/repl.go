package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	settle(ctx context.Context)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Home(ctx context.Context) error
	Auctions(ctx context.Context, args []string) error
	Auction(ctx context.Context, args []string) error
	Products(ctx context.Context, args []string) error
	Product(ctx context.Context, args []string) error
	Categories(ctx context.Context, args []string) error
	Seller(ctx context.Context) error
	Dashboard(ctx context.Context) error

	Filter(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
	Watched(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Back(ctx context.Context) error

	Watch(ctx context.Context, args []string) error
	Bid(ctx context.Context, args []string) error
	Cart(ctx context.Context, args []string) error
	Contact(ctx context.Context, args []string) error
	Start(ctx context.Context) error
	Refresh(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: home, auctions, auction <id>, products, product <id>, categories [id], " +
		"filter k=v.., clear, page <n|next|prev>, search <text>, back, bid <id> [amount], start, " +
		"(r)efresh, register, login, exit"
	helpLoggedIn = "Available commands: home, auctions [watched], auction <id>, products, product <id>, categories [id], " +
		"filter k=v.., clear, watched, page <n|next|prev>, search <text>, back, watch <id>, bid <id> [amount], " +
		"cart <id>, contact <seller id>, seller, dashboard, (r)efresh, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the auctionhub CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Unknown commands are reported back to the user. After every command the
// navigation it requested is applied. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("ah %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "home":
			_ = a.Home(ctx)
		case "auctions":
			_ = a.Auctions(ctx, args)
		case "auction", "show":
			_ = a.Auction(ctx, args)
		case "products":
			_ = a.Products(ctx, args)
		case "product":
			_ = a.Product(ctx, args)
		case "categories", "category":
			_ = a.Categories(ctx, args)
		case "seller":
			_ = a.Seller(ctx)
		case "dashboard":
			_ = a.Dashboard(ctx)

		case "filter":
			_ = a.Filter(ctx, args)
		case "clear":
			_ = a.Clear(ctx)
		case "watched":
			_ = a.Watched(ctx)
		case "page":
			_ = a.Page(ctx, args)
		case "next":
			_ = a.Page(ctx, []string{"next"})
		case "prev":
			_ = a.Page(ctx, []string{"prev"})
		case "search":
			_ = a.Search(ctx, args)
		case "back":
			_ = a.Back(ctx)

		case "watch":
			_ = a.Watch(ctx, args)
		case "bid":
			_ = a.Bid(ctx, args)
		case "cart":
			_ = a.Cart(ctx, args)
		case "contact":
			_ = a.Contact(ctx, args)
		case "start":
			_ = a.Start(ctx)
		case "r", "refresh":
			_ = a.Refresh(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.settle(ctx)
	}
}
