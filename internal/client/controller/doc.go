// Package controller holds the page and card logic of the terminal client.
//
// A page owns a view.Scope for as long as it is displayed. Remote results
// are applied through that scope, so a response arriving after the page was
// closed is dropped. Auction cards own a countdown each, started when the
// card is created and stopped when it scrolls out of the visible window or
// its page closes.
//
// Controllers never print. User-facing text goes to the notify.Notifier and
// view changes go to the Navigator.
package controller
