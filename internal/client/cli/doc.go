// Package cli provides the interactive auctionhub terminal client.
//
// It wires configuration, the local session database, the marketplace API
// services and an interactive REPL. Each screen of the marketplace (home,
// auctions, an auction, products, categories, the seller area and the
// dashboard) is a controller page; the App opens one page at a time and
// renders it as text.
//
// Key features:
//   - Login / Register / Logout, with the session kept across runs
//   - Browse auctions, products and categories with filters and paging
//   - Watch auctions and place bids
//   - Seller area and personal dashboard
//   - Background health check that shows online/offline in the prompt
//
// Navigation requested by a page (for example a redirect to login) is queued
// and applied after the current command returns. The REPL is started via
// App.Root(ctx), which blocks until the user exits.
package cli
