package controller

import (
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/auctionhub/internal/client/lifecycle"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/notify"
	"github.com/dmitrijs2005/auctionhub/internal/client/services"
	"github.com/dmitrijs2005/auctionhub/internal/client/watchlist"
	"github.com/dmitrijs2005/auctionhub/internal/common"
	"github.com/dmitrijs2005/auctionhub/internal/logging"
)

const DefaultPageSize = 12

// SessionReader is the read side of the session.
type SessionReader interface {
	IsAuthenticated() bool
	IsSeller() bool
	CurrentUser() *models.User
}

// Navigator switches views. query may be nil.
type Navigator interface {
	Navigate(path string, query url.Values)
}

const (
	PathHome       = "/"
	PathLogin      = common.LoginPath
	PathAuctions   = "/auctions"
	PathProducts   = "/products"
	PathCategories = "/categories"
	PathSeller     = "/seller"
	PathDashboard  = "/dashboard"
	PathMessages   = "/messages"
)

func AuctionPath(id int64) string  { return PathAuctions + "/" + strconv.FormatInt(id, 10) }
func ProductPath(id int64) string  { return PathProducts + "/" + strconv.FormatInt(id, 10) }
func CategoryPath(id int64) string { return PathCategories + "/" + strconv.FormatInt(id, 10) }

// Messages shown to the user.
const (
	MsgLoginToBid        = "Please login to place a bid"
	MsgAuctionNotActive  = "This auction is not active"
	MsgLoginToWatch      = "Please login to watch auctions"
	MsgWatchFailed       = "Failed to update watchlist"
	MsgAddedToCart       = "Product added to cart!"
	MsgSellerOnly        = "Access denied. Seller privileges required."
	MsgBidPlaced         = "Bid placed"
	MsgBidFailed         = "Failed to place bid"
	MsgLoadAuctions      = "Failed to load auctions"
	MsgLoadWatched       = "Failed to load watched auctions"
	MsgLoadAuction       = "Failed to load auction"
	MsgLoadProducts      = "Failed to load products"
	MsgLoadCategories    = "Failed to load categories"
	MsgLoadSubcategories = "Failed to load subcategories"
	MsgLoadStats         = "Failed to load statistics"
	MsgLoadHome          = "Failed to load home page"
)

// Deps is everything a controller may talk to. Session, Notifier and Nav
// are required; services are required by the pages that use them.
type Deps struct {
	Session    SessionReader
	Auctions   services.AuctionService
	Products   services.ProductService
	Categories services.CategoryService
	Stats      services.StatsService
	Watchlist  *watchlist.Coordinator
	Notifier   notify.Notifier
	Nav        Navigator
	Log        logging.Logger

	Clock             lifecycle.Clock
	CountdownInterval time.Duration
	PageSize          int
}

func (d *Deps) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

func (d *Deps) pageSize() int {
	if d.PageSize > 0 {
		return d.PageSize
	}
	return DefaultPageSize
}

func (d *Deps) logger() logging.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logging.Nop()
}
