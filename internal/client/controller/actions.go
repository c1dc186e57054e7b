package controller

import (
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/auctionhub/internal/client/gate"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
)

// AddToCart confirms the product was added, or sends an anonymous user to
// the login view.
func AddToCart(deps *Deps, p models.Product) gate.Decision {
	d := gate.AddToCart(deps.Session.IsAuthenticated())
	if d.Outcome == gate.RedirectLogin {
		deps.Nav.Navigate(PathLogin, nil)
		return d
	}
	deps.Notifier.ShowSuccess(MsgAddedToCart)
	return d
}

// ContactSeller opens a conversation with the seller.
func ContactSeller(deps *Deps, sellerID int64) gate.Decision {
	d := gate.ContactSeller(deps.Session.IsAuthenticated())
	if d.Outcome == gate.RedirectLogin {
		deps.Nav.Navigate(PathLogin, nil)
		return d
	}
	deps.Nav.Navigate(PathMessages, url.Values{"recipient": {strconv.FormatInt(sellerID, 10)}})
	return d
}

// GetStarted sends a logged-in user to the auctions and anyone else to login.
func GetStarted(deps *Deps) {
	if deps.Session.IsAuthenticated() {
		deps.Nav.Navigate(PathAuctions, nil)
		return
	}
	deps.Nav.Navigate(PathLogin, nil)
}
